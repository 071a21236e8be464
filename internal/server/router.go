package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zephyrtronium/postfix"
)

type ExpressionRequest struct {
	Expression string `json:"expression"`
}

type EvaluateResponse struct {
	Result  int      `json:"result"`
	Postfix []string `json:"postfix"`
}

type PostfixResponse struct {
	Postfix []string `json:"postfix"`
	Text    string   `json:"text"`
}

type BalancedResponse struct {
	Balanced bool `json:"balanced"`
}

type ResultResponse struct {
	Result int `json:"result"`
}

type CalcRouter struct {
	e      *echo.Echo
	mode   postfix.Mode
	maxLen int
}

func NewCalcRouter(e *echo.Echo, mode postfix.Mode, maxLen int) *CalcRouter {
	return &CalcRouter{
		e:      e,
		mode:   mode,
		maxLen: maxLen,
	}
}

func (r *CalcRouter) Bind() {
	r.e.GET("/health", r.healthHandler)
	g := r.e.Group("/v1")
	g.POST("/evaluate", r.evaluateHandler)
	g.POST("/postfix", r.postfixHandler)
	g.GET("/balanced", r.balancedHandler)
	g.POST("/rpn", r.rpnHandler)
}

func (r *CalcRouter) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// expression binds and checks the expression in the request body.
func (r *CalcRouter) expression(c echo.Context) (string, error) {
	var req ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return "", &ValidationError{Message: "invalid request body", Status: http.StatusBadRequest}
	}
	return req.Expression, r.check(req.Expression)
}

func (r *CalcRouter) check(expr string) error {
	if len(expr) > r.maxLen {
		return &ValidationError{Message: "expression too long", Status: http.StatusRequestEntityTooLarge}
	}
	return nil
}

func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	expr, err := r.expression(c)
	if err != nil {
		return err
	}
	// Evaluate checks balance before converting, so convert again only for
	// the reply.
	result, err := postfix.Evaluate(expr, r.mode)
	if err != nil {
		return err
	}
	q, err := postfix.ToPostfix(expr, r.mode)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, EvaluateResponse{Result: result, Postfix: postfix.Texts(q)})
}

func (r *CalcRouter) postfixHandler(c echo.Context) error {
	expr, err := r.expression(c)
	if err != nil {
		return err
	}
	q, err := postfix.ToPostfix(expr, r.mode)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, PostfixResponse{Postfix: postfix.Texts(q), Text: postfix.Format(q)})
}

func (r *CalcRouter) balancedHandler(c echo.Context) error {
	expr := c.QueryParam("expression")
	if err := r.check(expr); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, BalancedResponse{Balanced: postfix.Balanced(expr)})
}

func (r *CalcRouter) rpnHandler(c echo.Context) error {
	expr, err := r.expression(c)
	if err != nil {
		return err
	}
	q, err := postfix.ParsePostfix(expr)
	if err != nil {
		return err
	}
	result, err := postfix.EvalPostfix(q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ResultResponse{Result: result})
}
