package domain

// BuildOptions carries the flags handed to the plain build delegate.
type BuildOptions struct {
	SharedlibOnly  bool
	ModelOnly      bool
	BuildList      []Target // nil means "not requested", not "build nothing"
	SaveProvenance bool
	SeparateBuilds bool
	Ninja          bool
	DryRun         bool
}

// TestBuildOptions carries the flags handed to a system test driver.
type TestBuildOptions struct {
	SharedlibOnly  bool
	ModelOnly      bool
	Ninja          bool
	DryRun         bool
	SeparateBuilds bool
}
