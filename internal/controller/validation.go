package controller

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators 注册自定义校验标签，路由初始化时调用一次
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

// bindingMessage 把校验错误转成前端可读的提示，返回出错的 json 字段名
func bindingMessage(err error) (string, string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", "Invalid request body"
	}

	fe := verrs[0]
	field := jsonName(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return field, fmt.Sprintf("%s is required", field)
	case "email":
		return field, "Please enter a valid email address"
	case "min":
		return field, fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return field, fmt.Sprintf("%s is invalid", field)
	}
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	name := strings.ToLower(field[:1]) + field[1:]
	return strings.ReplaceAll(name, "ID", "Id")
}
