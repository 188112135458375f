package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"studentdocs/internal/service"
)

// bearerCredential extracts the bearer token from the Authorization header.
// An empty result is handed to the resolver, which rejects it as
// unauthenticated; the handler does not pre-judge credentials.
func bearerCredential(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

type signedURLRequest struct {
	DocID string `json:"doc_id"`
	// ExpirySeconds tolerates both a JSON number and a numeric string;
	// anything else falls back to the configured default.
	ExpirySeconds any `json:"expiry_seconds"`
}

func (r *signedURLRequest) expiry() string {
	switch v := r.ExpirySeconds.(type) {
	case float64:
		return strconv.Itoa(int(v))
	case string:
		return v
	default:
		return ""
	}
}

// IssueSignedURL answers GET and POST requests for a temporary document
// link. doc_id is required; expiry_seconds is optional and falls back to
// defaultTTLSec when missing or not numeric. Clamping into the [60, 3600]
// bound happens in the issuer.
func IssueSignedURL(issuer service.Issuer, defaultTTLSec int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docID := c.Query("doc_id")
		rawTTL := c.Query("expiry_seconds")

		if c.Method() == fiber.MethodPost && docID == "" {
			var req signedURLRequest
			if err := c.BodyParser(&req); err == nil {
				docID = req.DocID
				if e := req.expiry(); e != "" {
					rawTTL = e
				}
			}
		}

		ttl := defaultTTLSec
		if rawTTL != "" {
			if parsed, err := strconv.Atoi(rawTTL); err == nil {
				ttl = parsed
			}
		}

		su, err := issuer.Issue(c.UserContext(), bearerCredential(c), docID, ttl)
		if err != nil {
			return mapError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(su)
	}
}
