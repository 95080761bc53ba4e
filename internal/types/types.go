package types

import "go/token"

// Severity is the reporting level of a rule or an issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a configuration string into a Severity.
// Unrecognized values default to warning.
func ParseSeverity(s string) Severity {
	switch s {
	case "error":
		return SeverityError
	case "warning":
		return SeverityWarning
	case "info":
		return SeverityInfo
	case "off":
		return SeverityOff
	}
	return SeverityWarning
}

// Issue represents a lint issue found in the code base.
type Issue struct {
	Rule       string
	Category   string
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Start      token.Position
	End        token.Position
	Severity   Severity
	Confidence float64
}

// ConfigRule holds the per-rule settings read from the configuration file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// UnmarshalYAML accepts severity as a plain string: "error", "warning",
// "info" or "off".
func (c *ConfigRule) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw struct {
		Severity string `yaml:"severity"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	c.Severity = ParseSeverity(raw.Severity)
	return nil
}
