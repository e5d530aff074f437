package rekuest

import (
	"strconv"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	jaTranslations "github.com/go-playground/validator/v10/translations/ja"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"webby.dev/backend/internal/pkg/weberr"
	"webby.dev/backend/internal/util"
	"webby.dev/backend/internal/util/i18n"
)

var Validate = util.NewValidator()

func init() {
	registrations := map[string]func(*validator.Validate, ut.Translator) error{
		"en": enTranslations.RegisterDefaultTranslations,
		"zh": zhTranslations.RegisterDefaultTranslations,
		"ja": jaTranslations.RegisterDefaultTranslations,
	}

	for locale, register := range registrations {
		tr, _ := i18n.UT.GetTranslator(locale)
		if err := register(Validate, tr); err != nil {
			log.Warn().Err(err).Str("locale", locale).Msg("could not register translation")
		}
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(utt),
		})
	}
	return trans
}

func validateStruct(ctx *fiber.Ctx, s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		panic(err)
	}
	return translate(TranslatorFromCtx(ctx), errs)
}

// ValidBody will get the body from *fiber.Ctx using fiber#BodyParser(),
// and validate it using the validator singleton. If the validation passed it will write the unmarshalled body
// to dest and return a nil, otherwise it will return an error. Notice that dest shall
// always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return weberr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if err := validateStruct(ctx, dest); err != nil {
		return weberr.NewInvalidViolations(err)
	}

	return nil
}

// ParamID parses the path parameter key as a positive integer id.
func ParamID(ctx *fiber.Ctx, key string) (int64, error) {
	raw := strings.TrimSpace(ctx.Params(key))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, weberr.ErrInvalidReq.Msg("invalid request: %s must be a positive integer, got %q", key, raw)
	}
	return id, nil
}
