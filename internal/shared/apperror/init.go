package apperror

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hourSlotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d-([01]\d|2[0-3]):[0-5]\d$`)

func Init() {
	// Daftarkan fungsi kustom ke validator bawaan Gin
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Field name diambil dari tag json (contoh: `json:"activity_type"`)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	})

	_ = v.RegisterValidation("hourslot", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !hourSlotPattern.MatchString(s) {
			return false
		}
		return s[:5] < s[6:]
	})
}
