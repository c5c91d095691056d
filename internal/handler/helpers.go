package handler

import (
	"net/http"
	"reflect"
	"regexp"
	"strconv"

	"inventra/internal/apierror"
	"inventra/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// phoneRE accepts the usual separator/parenthesis phone formats.
var phoneRE = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRE.MatchString(fl.Field().String())
	})
}

// bindJSON binds the body with no field validation. The core routes accept
// whatever shape the client sends and let the database be the judge.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logError(c, err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// bindAndValidate binds JSON and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails; the
// caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logError(c, err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON: " + err.Error()})
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity,
			gin.H{"success": false, "message": "Validation error", "fields": fields})
		return false
	}
	return true
}

// queryID parses ?id= from the query string; falls back to the body id when
// the pointer is non-nil. ok is false when neither yields an id.
func queryID(c *gin.Context, bodyID *uint) (uint, bool) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return 0, false
		}
		return uint(id), true
	}
	if bodyID != nil {
		return *bodyID, true
	}
	return 0, false
}

// logError records the failure before any response is written.
func logError(c *gin.Context, err error) {
	log.Error().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Err(err).
		Msg("request failed")
}

// getError writes the read-endpoint error shape: {"error": <raw message>}.
func getError(c *gin.Context, err error) {
	logError(c, err)
	c.JSON(apierror.StatusOf(err), gin.H{"error": err.Error()})
}

// mutationError writes the write-endpoint error shape:
// {"success": false, "message": <raw message>}.
func mutationError(c *gin.Context, err error) {
	logError(c, err)
	c.JSON(apierror.StatusOf(err), gin.H{"success": false, "message": err.Error()})
}

// missingID rejects a mutation that carries no usable id.
func missingID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing or invalid id"})
}
