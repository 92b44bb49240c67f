package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValues(t *testing.T) {
	body := url.Values{
		"customerId": {"c1"},
		"status":     {"pending", "paid"},
		"empty":      {""},
	}.Encode()
	req := httptest.NewRequest("POST", "/dashboard/invoices?amount=10", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	values, err := FormValues(req)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"customerId": "c1", "status": "paid", "empty": ""}, values)
}

// multipartRequest builds a multipart/form-data POST the way browsers submit forms.
func multipartRequest(t *testing.T, target string, fields [][2]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		require.NoError(t, w.WriteField(f[0], f[1]))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestFormValues_Multipart(t *testing.T) {
	req := multipartRequest(t, "/dashboard/invoices", [][2]string{
		{"customerId", "c1"},
		{"amount", "157.95"},
		{"status", "pending"},
		{"status", "paid"},
	})

	values, err := FormValues(req)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"customerId": "c1", "amount": "157.95", "status": "paid"}, values)
}

func TestFormValues_BadBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/register", strings.NewReader("%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := FormValues(req)

	assert.Error(t, err)
}

func TestFormValues_BrokenMultipart(t *testing.T) {
	req := httptest.NewRequest("POST", "/register", strings.NewReader("not a multipart body"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")

	_, err := FormValues(req)

	assert.Error(t, err)
}
