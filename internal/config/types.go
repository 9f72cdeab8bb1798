package config

// LogFormat selects the zap encoder used for build logs.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level qbank configuration, corresponding to .qbank.yml.
type Config struct {
	Questions      string            `yaml:"questions" koanf:"questions"`
	QuestionsDir   string            `yaml:"questions_dir" koanf:"questions_dir"`
	QuestionsGlob  []string          `yaml:"questions_glob" koanf:"questions_glob"`
	StaticPartsDir string            `yaml:"static_parts_dir" koanf:"static_parts_dir"`
	Output         string            `yaml:"output" koanf:"output"`
	SiteDir        string            `yaml:"site_dir" koanf:"site_dir"`
	TagNames       map[string]string `yaml:"tag_names" koanf:"tag_names"`
	Log            LogConfig         `yaml:"log" koanf:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}

// UsesMarkdownDir reports whether questions are read from a directory of
// markdown files instead of the JSON document.
func (c *Config) UsesMarkdownDir() bool {
	return c.QuestionsDir != ""
}
