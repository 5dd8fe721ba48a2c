package domain

// Command describes a single native build tool invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  map[string]string
}
