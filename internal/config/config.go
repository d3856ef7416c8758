package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"liftreport/internal/core"
)

type Config struct {
	// Report
	Year       int
	CSVPath    string
	OutputPath string
	Mappings   []core.ExerciseGroup

	// Data source selection
	DataBackend string

	// SQLite cache
	SQLiteDBPath string

	// AMQP (optional notifications)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets source
	GoogleSpreadsheetID string
	GoogleSheetName     string
}

// DefaultMappings are the reference exercise groups, including the legacy
// raw names that older log rows still carry.
func DefaultMappings() []core.ExerciseGroup {
	return []core.ExerciseGroup{
		{Name: "Squat (Barbell)", Aliases: []string{"Squat (Barbell)"}},
		{Name: "Deadlift (Barbell)", Aliases: []string{"Deadlift (Barbell)", "Deadlift Old Data"}},
		{Name: "Bench Press (Barbell)", Aliases: []string{"Bench Press (Barbell)", "Bench press Backup"}},
	}
}

func Load() (*Config, error) {
	mappings := DefaultMappings()
	if raw := os.Getenv("EXERCISE_MAPPINGS"); raw != "" {
		parsed, err := ParseMappings(raw)
		if err != nil {
			return nil, fmt.Errorf("EXERCISE_MAPPINGS: %w", err)
		}
		mappings = parsed
	}

	cfg := &Config{
		Year:       getEnvInt("REPORT_YEAR", 2024),
		CSVPath:    getEnv("CSV_PATH", "data/strong.csv"),
		OutputPath: getEnv("OUTPUT_PATH", "output/training_report.png"),
		Mappings:   mappings,

		DataBackend: getEnv("DATA_BACKEND", "csv"),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/liftreport.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "liftreport"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "report_events"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", "Workouts"),
	}

	return cfg, nil
}

// ParseMappings parses a "Group=alias|alias;Group=alias" string into
// exercise groups. Aliases are trimmed; empty segments are rejected.
func ParseMappings(raw string) ([]core.ExerciseGroup, error) {
	var groups []core.ExerciseGroup
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, aliasList, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("mapping %q: expected Group=alias|alias", part)
		}
		name = strings.TrimSpace(name)
		var aliases []string
		for _, a := range strings.Split(aliasList, "|") {
			a = strings.TrimSpace(a)
			if a == "" {
				return nil, fmt.Errorf("mapping %q: empty alias", part)
			}
			aliases = append(aliases, a)
		}
		groups = append(groups, core.ExerciseGroup{Name: name, Aliases: aliases})
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("no exercise groups defined")
	}
	return groups, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.Year < 1970 || c.Year > 2100 {
		errs = append(errs, fmt.Sprintf("invalid report year %d: must be between 1970 and 2100", c.Year))
	}

	if c.OutputPath == "" {
		errs = append(errs, "output path cannot be empty")
	} else if ext := strings.ToLower(filepath.Ext(c.OutputPath)); ext != ".png" {
		errs = append(errs, fmt.Sprintf("invalid output path '%s': must end in .png", c.OutputPath))
	}

	validBackends := []string{"csv", "sheets", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == "csv" && c.CSVPath == "" {
		errs = append(errs, "CSV path cannot be empty when using csv backend")
	}

	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.DataBackend == "sheets" && c.GoogleSpreadsheetID == "" {
		errs = append(errs, "Google Spreadsheet ID is required when using sheets backend")
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if err := core.ValidateGroups(c.Mappings); err != nil {
		errs = append(errs, fmt.Sprintf("invalid exercise mappings: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
