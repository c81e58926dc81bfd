package flags

var (
	Dev         bool
	LogStd      bool
	EnvNoPrefix bool
	SkipConfig  bool
	SkipEnv     bool

	DataDir string

	DisableLogColor bool
)

const EnvPrefix = "AUTHHUB_"
