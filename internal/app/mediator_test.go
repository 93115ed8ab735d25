package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createWidget struct {
	Name  string          `validate:"required"`
	Count int             `validate:"gt=0"`
	Price decimal.Decimal `validate:"gt=0"`
}

func (createWidget) ValidationMessages() map[string]string {
	return map[string]string{
		"Name": "A widget needs a name.",
	}
}

type widgetHandler struct {
	calls  int
	result Result[string]
	err    error
}

func (h *widgetHandler) Handle(ctx context.Context, cmd createWidget) (Result[string], error) {
	h.calls++
	return h.result, h.err
}

func Test_Send_InvokesRegisteredHandler(t *testing.T) {
	m := NewMediator()
	h := &widgetHandler{result: Ok("made")}
	require.NoError(t, Register(m, h))

	res, err := Send[createWidget, string](context.Background(), m,
		createWidget{Name: "sprocket", Count: 1, Price: decimal.NewFromInt(2)})

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, "made", res.Value())
	assert.Equal(t, 1, h.calls)
}

func Test_Send_CollectsEveryViolation(t *testing.T) {
	m := NewMediator()
	h := &widgetHandler{result: Ok("made")}
	require.NoError(t, Register(m, h))

	res, err := Send[createWidget, string](context.Background(), m, createWidget{})

	require.NoError(t, err)
	assert.False(t, res.IsSuccess())
	assert.False(t, res.IsNotFound())
	require.Len(t, res.Errors(), 3, "all violated rules are reported at once")
	assert.Equal(t, 0, h.calls, "handler must not see an invalid request")

	byField := map[string]string{}
	for _, fe := range res.Errors() {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "A widget needs a name.", byField["Name"], "provider message wins")
	assert.Equal(t, "Count must be greater than 0.", byField["Count"])
	assert.Equal(t, "Price must be greater than 0.", byField["Price"], "decimal fields obey numeric rules")
}

func Test_Send_PartialViolation(t *testing.T) {
	m := NewMediator()
	require.NoError(t, Register(m, &widgetHandler{result: Ok("made")}))

	res, err := Send[createWidget, string](context.Background(), m,
		createWidget{Name: "sprocket", Count: 0, Price: decimal.NewFromInt(1)})

	require.NoError(t, err)
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, "Count", res.Errors()[0].Field)
}

func Test_Register_RejectsDuplicate(t *testing.T) {
	m := NewMediator()
	require.NoError(t, Register(m, &widgetHandler{}))

	err := Register(m, &widgetHandler{})
	assert.Error(t, err)
}

func Test_Send_UnregisteredRequest(t *testing.T) {
	m := NewMediator()

	_, err := Send[createWidget, string](context.Background(), m,
		createWidget{Name: "x", Count: 1, Price: decimal.NewFromInt(1)})
	assert.Error(t, err)
}

func Test_Send_PropagatesHandlerError(t *testing.T) {
	m := NewMediator()
	boom := errors.New("connection reset")
	require.NoError(t, Register(m, &widgetHandler{err: boom}))

	_, err := Send[createWidget, string](context.Background(), m,
		createWidget{Name: "x", Count: 1, Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, boom)
}

func Test_Send_PassesThroughNotFound(t *testing.T) {
	m := NewMediator()
	require.NoError(t, Register(m, &widgetHandler{result: NotFound[string]("Name", "Widget not found")}))

	res, err := Send[createWidget, string](context.Background(), m,
		createWidget{Name: "x", Count: 1, Price: decimal.NewFromInt(1)})

	require.NoError(t, err)
	assert.True(t, res.IsNotFound())
	assert.False(t, res.IsSuccess())
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, "Widget not found", res.Errors()[0].Message)
}

func Test_Result_States(t *testing.T) {
	ok := Ok(42)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsNotFound())
	assert.Equal(t, 42, ok.Value())
	assert.Empty(t, ok.Errors())

	fail := Fail[int]("Field", "bad")
	assert.False(t, fail.IsSuccess())
	assert.False(t, fail.IsNotFound())
	require.Len(t, fail.Errors(), 1)
	assert.Equal(t, "Field", fail.Errors()[0].Field)

	domainFail := FailDomain[int](errors.New("quantity must be positive"))
	require.Len(t, domainFail.Errors(), 1)
	assert.Empty(t, domainFail.Errors()[0].Field, "domain guards are not tied to a field")

	notFound := NotFound[int]("ID", "gone")
	assert.True(t, notFound.IsNotFound())
}
