package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

// FromBindError turns a gin bind/validation error into field->message.
// dst is the bound struct pointer, used to read json tags for field keys.
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	// other bind errors (type mismatch etc.)
	out["_"] = "البيانات المدخلة غير صالحة."
	return out
}

func fieldKey(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}

	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	tag := f.Tag.Get("json")
	if tag == "" {
		return strings.ToLower(structField)
	}
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return strings.ToLower(structField)
	}
	return tag
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "هذا الحقل مطلوب."
	case "email":
		return "الرجاء إدخال بريد إلكتروني صحيح."
	case "min":
		return "الحد الأدنى " + param + " أحرف."
	case "max":
		return "الحد الأقصى " + param + " أحرف."
	case "gt", "gte":
		return "يجب أن تكون القيمة موجبة."
	case "oneof":
		return "قيمة غير مسموح بها."
	default:
		return "قيمة غير صالحة."
	}
}
