package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	numberify "github.com/xavirn89/numberify-text"
)

// ---- JSON request/response types ---------------------------------------

type numberifyRequest struct {
	Text  string `json:"text" form:"text" binding:"required"`
	Lang  string `json:"lang" form:"lang" binding:"omitempty,language"`
	Trace bool   `json:"trace" form:"trace"`
}

type stepJSON struct {
	Stage  string   `json:"stage"`
	Tokens []string `json:"tokens"`
}

type numberifyResponse struct {
	Text   string     `json:"text"`
	Lang   string     `json:"lang"`
	Result string     `json:"result"`
	Steps  []stepJSON `json:"steps,omitempty"`
}

type languagesResponse struct {
	Languages map[string]string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers -------------------------------------------------------------

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}

func toStepsJSON(steps []numberify.Step) []stepJSON {
	out := make([]stepJSON, 0, len(steps))
	for _, s := range steps {
		out = append(out, stepJSON{Stage: s.Stage, Tokens: s.Tokens})
	}
	return out
}

// bindingMessage turns a bind error into a client-facing message.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "body must be JSON with a non-empty 'text' field"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("missing '%s' parameter", field))
		case "language":
			msgs = append(msgs, fmt.Sprintf("unsupported language %q (supported: %s)",
				fe.Value(), strings.Join(numberify.Tags(), ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("invalid '%s' parameter", field))
		}
	}
	return strings.Join(msgs, "; ")
}

// ---- handlers ------------------------------------------------------------

func (s *Server) handleNumberify(c *gin.Context) {
	var req numberifyRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}
	if limit := s.cfg.Numberify.MaxTextLength; limit > 0 && utf8.RuneCountInString(req.Text) > limit {
		writeError(c, http.StatusBadRequest, fmt.Sprintf("text exceeds %d characters", limit))
		return
	}

	lang := req.Lang
	if lang == "" {
		lang = s.cfg.Numberify.DefaultLanguage
	}

	resp := numberifyResponse{
		Text:   req.Text,
		Lang:   lang,
		Result: numberify.Text(req.Text, lang),
	}
	if req.Trace {
		resp.Steps = toStepsJSON(numberify.Trace(req.Text, lang))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, languagesResponse{Languages: numberify.Languages()})
}
