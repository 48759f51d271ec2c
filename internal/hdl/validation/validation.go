package validation

import (
	"reflect"
	"strings"

	"github.com/JMURv/zedasignal/internal/dto"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterTagNameFunc(
		func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		},
	)
}

// Struct validates tags first and then the cross-field rules tags cannot express.
func Struct(req any) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	if r, ok := req.(*dto.CreateSignalRequest); ok {
		return CreateSignalRequest(r)
	}
	return nil
}

func CreateSignalRequest(req *dto.CreateSignalRequest) error {
	if strings.EqualFold(req.PairBase, req.PairQuote) {
		return ErrSamePair
	}

	for _, t := range req.Targets {
		if t <= 0 {
			return ErrBadTargets
		}
	}
	return nil
}
