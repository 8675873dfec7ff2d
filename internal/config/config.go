package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/idlespectre/internal/classify"
	"github.com/ppiankov/idlespectre/internal/pricing"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()

	enLocale := en.New()
	trans, _ = ut.New(enLocale, enLocale).GetTranslator("en")

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})

	_ = en_translations.RegisterDefaultTranslations(validate, trans)
	_ = validate.RegisterTranslation("duration", trans,
		func(ut ut.Translator) error {
			return ut.Add("duration", "{0} must be a duration such as 90s or 10m", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("duration", fe.Field())
			return t
		},
	)
}

// Config holds idlespectre configuration loaded from .idlespectre.yaml.
type Config struct {
	Profile          string            `yaml:"profile"`
	Region           string            `yaml:"region"`
	AgeThresholdDays int               `yaml:"age_threshold_days" validate:"gte=0"`
	Costs            pricing.Overrides `yaml:"costs"`
	Currency         string            `yaml:"currency"`
	Artifact         Artifact          `yaml:"artifact"`
	Notification     Notification      `yaml:"notification"`
	Format           string            `yaml:"format" validate:"omitempty,oneof=text json sarif"`
	Timeout          string            `yaml:"timeout" validate:"omitempty,duration"`
	Exclude          Exclude           `yaml:"exclude"`
}

// Artifact locates the CSV report bucket.
type Artifact struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
}

// Notification names the topic that receives the summary.
type Notification struct {
	TopicARN string `yaml:"topic_arn" validate:"omitempty,startswith=arn:"`
}

// Exclude defines resources to leave out of the report.
type Exclude struct {
	ResourceIDs []string `yaml:"resource_ids"`
}

// Validate checks field ranges and formats. All violations are reported
// together.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, fe.Translate(trans)))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// TimeoutDuration parses the timeout string as a duration.
func (c Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// AgeThreshold returns the configured volume age threshold in days.
func (c Config) AgeThreshold() int {
	if c.AgeThresholdDays <= 0 {
		return classify.DefaultAgeThresholdDays
	}
	return c.AgeThresholdDays
}

// MonthlyCosts returns the per-type cost table with configured overrides
// applied over the built-in defaults.
func (c Config) MonthlyCosts() pricing.Costs {
	return pricing.DefaultCosts.Merge(c.Costs)
}

// Load searches for .idlespectre.yaml or .idlespectre.yml in the given
// directory and returns the parsed config. Returns an empty Config if no file
// is found.
func Load(dir string) (Config, error) {
	candidates := []string{
		filepath.Join(dir, ".idlespectre.yaml"),
		filepath.Join(dir, ".idlespectre.yml"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, nil
	}

	return Config{}, nil
}
