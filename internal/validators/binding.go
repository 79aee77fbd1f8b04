package validators

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
)

var (
	timeOfDay = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	mobile    = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{6,18}[0-9]$`)

	registerOnce sync.Once
)

// DateLayouts are accepted for every date field, most specific last.
var DateLayouts = []string{"2006-01-02", time.RFC3339}

func IsTimeOfDay(v string) bool { return timeOfDay.MatchString(v) }

func IsMobilePhone(v string) bool { return mobile.MatchString(strings.TrimSpace(v)) }

func IsDate(v string) bool {
	for _, layout := range DateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

// Register installs the custom tags on gin's validator engine. Safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("hhmm", stringRule(IsTimeOfDay))
		_ = v.RegisterValidation("roomtype", stringRule(domain.IsRoomType))
		_ = v.RegisterValidation("amenity", stringRule(domain.IsAmenity))
		_ = v.RegisterValidation("mobile", stringRule(IsMobilePhone))
		_ = v.RegisterValidation("isodate", stringRule(IsDate))
		_ = v.RegisterValidation("workschedule", stringRule(domain.IsWorkSchedule))
		_ = v.RegisterValidation("sleepschedule", stringRule(domain.IsSleepSchedule))
		_ = v.RegisterValidation("contactpref", stringRule(domain.IsContactPreference))
	})
}

func stringRule(fn func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return fn(fl.Field().String())
	}
}
