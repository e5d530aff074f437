package property

import (
	"github.com/gofiber/fiber/v2"

	"webby.dev/backend/internal/pkg/weberr"
)

const CodeEmptyName = "EMPTY_NAME"

// ErrEmptyName is returned by create and update when the name is blank. Nothing is written.
var ErrEmptyName = weberr.New(fiber.StatusBadRequest, CodeEmptyName, "property name must not be empty")
