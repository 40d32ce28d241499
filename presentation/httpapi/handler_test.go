package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkout_bot/domain/entities"
)

type fakeProcessor struct {
	calls  int
	result entities.RequestResult
	err    error
}

func (p *fakeProcessor) Process(_ context.Context, _ entities.Payload) (entities.RequestResult, error) {
	p.calls++
	return p.result, p.err
}

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

const validBody = `{
	"produtos": ["https://shop.example/p/farinha:0,05"],
	"checkout": {
		"email": "maria@example.com",
		"first_name": "Maria",
		"last_name": "Silva",
		"cpf": "123.456.789-00",
		"cep": "01310-100",
		"address_1": "Av. Paulista",
		"number": "1000",
		"neighborhood": "Bela Vista",
		"city": "São Paulo",
		"state": "SP",
		"phone": "11999998888"
	}
}`

func postCheckout(t *testing.T, proc Processor, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(proc, 100, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckoutEndpointSuccess(t *testing.T) {
	proc := &fakeProcessor{
		result: entities.RequestResult{
			Status:     entities.StatusSuccess,
			DurationMs: 1234,
			Items: []entities.CartEntryResult{
				{URL: "https://shop.example/p/farinha", Quantity: "0.05", Added: true},
			},
			Checkout: entities.CheckoutFilled,
		},
	}

	w := postCheckout(t, proc, validBody)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, proc.calls)

	var got entities.RequestResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, proc.result, got)
}

func TestCheckoutEndpointRejectsInvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "nope"},
		{"missing checkout", `{"produtos": ["http://x:1"]}`},
		{"state too long", strings.Replace(validBody, `"state": "SP"`, `"state": "SPX"`, 1)},
		{"state missing", strings.Replace(validBody, `"state": "SP",`, "", 1)},
		{"missing email", strings.Replace(validBody, `"email": "maria@example.com",`, "", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := &fakeProcessor{}
			w := postCheckout(t, proc, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, 0, proc.calls, "orchestrator must not run on invalid input")
			assert.Contains(t, w.Body.String(), "detail")
		})
	}
}

func TestCheckoutEndpointOptionalAddress2(t *testing.T) {
	proc := &fakeProcessor{result: entities.RequestResult{Status: entities.StatusSuccess}}

	w := postCheckout(t, proc, validBody)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, proc.calls)
}

func TestCheckoutEndpointReportsProcessError(t *testing.T) {
	proc := &fakeProcessor{err: errors.New("failed to load page https://shop.example/checkout/")}

	w := postCheckout(t, proc, validBody)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "failed to load page")
}

func TestHealthz(t *testing.T) {
	router := NewRouter(&fakeProcessor{}, 100, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitRejectsBursts(t *testing.T) {
	// 1 req/s with burst 2: the third immediate request must be rejected.
	router := NewRouter(&fakeProcessor{}, 1, testLogger())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}
