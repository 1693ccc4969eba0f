package render

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aymerick/raymond"
)

func registerHelpers(tpl *raymond.Template) {
	tpl.RegisterHelper("if_reply", ifReplyHelper)
	tpl.RegisterHelper("each_reverse", eachReverseHelper)
}

// ifReplyHelper renders its block when the argument is any number,
// including 0, and nothing when it is nil. The built-in `if` follows
// javascript truthiness and would swallow a reply target of 0. Any other
// type is a template mistake; the panic carries an error value, which
// raymond recovers and returns from Exec.
func ifReplyHelper(val interface{}, options *raymond.Options) interface{} {
	switch {
	case val == nil:
		return ""
	case isNumber(val):
		return raymond.SafeString(options.Fn())
	}
	panic(fmt.Errorf("if_reply: expected a number or null, got %T", val))
}

// eachReverseHelper iterates a list newest-first. The context itself stays
// in storage order; only the visual order flips.
func eachReverseHelper(items interface{}, options *raymond.Options) interface{} {
	v := reflect.ValueOf(items)
	if !v.IsValid() || v.Kind() != reflect.Slice {
		return ""
	}
	var b strings.Builder
	for i := v.Len() - 1; i >= 0; i-- {
		b.WriteString(options.FnWith(v.Index(i).Interface()))
	}
	return raymond.SafeString(b.String())
}

func isNumber(val interface{}) bool {
	switch val.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
