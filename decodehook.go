package humandur

import (
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

var (
	stdDurationType = reflect.TypeOf(time.Duration(0))
	durationType    = reflect.TypeOf(Duration{})
)

// maxUintFloat is 2^64, the first float64 past math.MaxUint64.
const maxUintFloat = float64(1 << 64)

// DecodeHook returns a mapstructure hook decoding strings and numbers into
// time.Duration or Duration fields, reading bare numbers in unit. Floats,
// which JSON decoding produces for every number, must be whole. Use it
// with viper.DecodeHook or mapstructure.DecoderConfig.DecodeHook.
func DecodeHook(unit Unit) mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from == to || (to != stdDurationType && to != durationType) {
			return data, nil
		}

		var input string
		v := reflect.ValueOf(data)
		switch from.Kind() {
		case reflect.String:
			input = v.String()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			input = strconv.FormatUint(v.Uint(), 10)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n := v.Int()
			input = strconv.FormatInt(n, 10)
			if n < 0 {
				return nil, &InvalidDurationError{Input: input, Unit: unit, Err: ErrNegative}
			}
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			input = strconv.FormatFloat(f, 'f', -1, 64)
			switch {
			case f < 0:
				return nil, &InvalidDurationError{Input: input, Unit: unit, Err: ErrNegative}
			case f != math.Trunc(f) || f >= maxUintFloat:
				// NaN and +Inf land here too
				return nil, &InvalidDurationError{Input: input, Unit: unit}
			}
			input = strconv.FormatUint(uint64(f), 10)
		default:
			return data, nil
		}

		d, err := Parse(input, unit)
		if err != nil {
			return nil, err
		}
		if to == durationType {
			return d, nil
		}
		return stdOrErr(input, unit, d)
	}
}
