package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/travelguide-web/internal/config"
)

const authChallenge = `Basic realm="Admin Area"`

// BasicAuth - шлюз доступа к админке. Когда пара логин/пароль не задана в
// окружении, запросы проходят без проверки (удобство разработки). Любой
// некорректный заголовок трактуется как несовпадение учетных данных.
func BasicAuth(cfg *config.AdminConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Username == "" || cfg.Password == "" {
			// No auth configured; allow access.
			return c.Next()
		}

		user, pass, ok := decodeBasicAuth(c.Get(fiber.HeaderAuthorization))
		if ok && equal(user, cfg.Username) && equal(pass, cfg.Password) {
			return c.Next()
		}

		c.Set(fiber.HeaderWWWAuthenticate, authChallenge)
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}
}

func decodeBasicAuth(header string) (user, pass string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}

	payload, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}

	user, pass, ok = strings.Cut(string(payload), ":")
	return user, pass, ok
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
