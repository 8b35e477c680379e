package config

import "time"

// Config is the root application configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths"`
	Book     BookConfig     `yaml:"book"`
	LLM      LLMConfig      `yaml:"llm"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// PathsConfig holds the locations of every pipeline artifact. Defaults
// mirror the conventional layout: everything next to the working directory.
type PathsConfig struct {
	PDF        string `yaml:"pdf"         env:"PATHS_PDF"         env-default:"HSK1_SC_L1-L15.pdf"`
	PageDump   string `yaml:"page_dump"   env:"PATHS_PAGE_DUMP"   env-default:"hsk1_ocr.txt"`
	Book       string `yaml:"book"        env:"PATHS_BOOK"        env-default:"hsk1.txt"`
	Structure  string `yaml:"structure"   env:"PATHS_STRUCTURE"   env-default:"chapter_structure_analysis.txt"`
	Chapters   string `yaml:"chapters"    env:"PATHS_CHAPTERS"    env-default:"corrected_chapters"`
	Combined   string `yaml:"combined"    env:"PATHS_COMBINED"    env-default:"hsk1_corrected.txt"`
	Vocabulary string `yaml:"vocabulary"  env:"PATHS_VOCABULARY"  env-default:"hsk1_vocabulary.json"`
	Atoms      string `yaml:"atoms"       env:"PATHS_ATOMS"       env-default:"hsk1_atoms.json"`
	Report     string `yaml:"report"      env:"PATHS_REPORT"      env-default:"pipeline_report.json"`
}

// BookConfig holds the fixed parameters of the source textbook.
type BookConfig struct {
	LessonCount int `yaml:"lesson_count" env:"BOOK_LESSON_COUNT" env-default:"15"`
}

// LLMConfig holds the external correction service settings. APIKey has no
// default: its absence is a configuration error surfaced before any task is
// dispatched.
type LLMConfig struct {
	APIKey      string        `yaml:"api_key"      env:"ANTHROPIC_API_KEY"`
	Model       string        `yaml:"model"        env:"LLM_MODEL"        env-default:"claude-sonnet-4-20250514"`
	MaxTokens   int64         `yaml:"max_tokens"   env:"LLM_MAX_TOKENS"   env-default:"8000"`
	MaxParallel int           `yaml:"max_parallel" env:"LLM_MAX_PARALLEL" env-default:"5"`
	CallTimeout time.Duration `yaml:"call_timeout" env:"LLM_CALL_TIMEOUT" env-default:"5m"`
}

// DatabaseConfig holds PostgreSQL connection settings for the optional
// vocabulary import. DSN is only required by the import command.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
