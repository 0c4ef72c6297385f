package rotserver

import (
	"context"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nathanielknight/rot/rotator"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"
)

const shutdownTimeout = 5 * time.Second

// Rotserver listens on port and rotates request paths (GET) and bodies (POST).
// A `shift` query parameter overrides defaultShift and `decode=true` applies the
// inverse rotation. The returned function gracefully shuts the server down.
func Rotserver(port int64, defaultShift int, out io.Writer) (func() error, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Output: out,
	}))
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.Recover())

	h := &handler{defaultShift: defaultShift}
	e.GET("/*", h.getResult)
	e.POST("/*", h.postResult)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	e.Listener = listener

	s := &http.Server{
		Handler: e,
	}

	go func() {
		if err := e.StartServer(s); err != nil && err != http.ErrServerClosed {
			e.Logger.Error(err)
		}
	}()

	shutdown := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(ctx)
	}

	return shutdown, nil
}

type handler struct {
	defaultShift int
}

func (h *handler) rotatorFor(c echo.Context) (rotator.Rotator, error) {
	shift := h.defaultShift

	if param := c.QueryParam("shift"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil {
			return rotator.Rotator{}, echo.NewHTTPError(http.StatusBadRequest, "shift expects a number: "+err.Error())
		}
		shift = parsed
	}

	r := rotator.New(shift)

	if decode, _ := strconv.ParseBool(c.QueryParam("decode")); decode {
		return r.Inverse(), nil
	}

	return r, nil
}

func (h *handler) getResult(c echo.Context) error {
	r, err := h.rotatorFor(c)
	if err != nil {
		return err
	}

	return c.String(http.StatusOK, r.RotString(c.Param("*")))
}

func (h *handler) postResult(c echo.Context) error {
	r, err := h.rotatorFor(c)
	if err != nil {
		return err
	}

	if c.Request().Body != nil {
		reqBody, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		if len(reqBody) > 0 {
			if !utf8.Valid(reqBody) {
				return echo.NewHTTPError(http.StatusBadRequest, "body is not valid UTF-8")
			}
			return c.String(http.StatusOK, r.RotString(string(reqBody)))
		}
	}

	return c.String(http.StatusOK, r.RotString(c.Param("*")))
}
