package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/kuverta/kuverta-go/pkg/content"
)

func TestListTenants_dispatch(t *testing.T) {
	stub := newAuthStub(t)
	var gotAuth, gotRequestID, gotAccept string
	stub.handler = func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/tenant" || r.Method != http.MethodGet {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		if r.URL.Query().Get("orgnr") != "SE556840226601" {
			t.Errorf("orgnr query = %q", r.URL.Query().Get("orgnr"))
		}
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode([]map[string]any{
			{"key": "ten-1", "name": "Acme AB"},
		})
	}

	c := MustNew(stub.config())
	tenants, err := c.ListTenants(context.Background(), "SE556840226601")
	if err != nil {
		t.Fatalf("ListTenants: %v", err)
	}
	if len(tenants) != 1 || tenants[0].Key != "ten-1" {
		t.Errorf("tenants = %v", tenants)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want Bearer tok-1", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-Id header missing")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if n := stub.authCalls.Load(); n != 1 {
		t.Errorf("auth endpoint called %d times, want 1", n)
	}
}

func TestOperations_reuseToken(t *testing.T) {
	stub := newAuthStub(t)
	stub.handler = func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	}

	c := MustNew(stub.config())
	ctx := context.Background()
	if _, err := c.ListTenants(ctx, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListUsers(ctx, "ten-1", "", "ssn"); err != nil {
		t.Fatal(err)
	}
	if n := stub.authCalls.Load(); n != 1 {
		t.Errorf("auth endpoint called %d times across two operations, want 1", n)
	}
}

func TestScopeDenied(t *testing.T) {
	stub := newAuthStub(t)
	stub.scope = "get:kuverta.v2.tenant"
	stub.handler = func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request dispatched despite missing scope: %s", r.URL.Path)
	}

	c := MustNew(stub.config())
	var serr *ScopeError
	_, err := c.ListUsers(context.Background(), "ten-1", "", "")
	if !errors.As(err, &serr) {
		t.Fatalf("ListUsers = %v, want *ScopeError", err)
	}
	if serr.Required != "get:kuverta.v1.tenant.ten-1.user" {
		t.Errorf("required scope = %q", serr.Required)
	}
}

func TestRequestAccess_keyFromHeader(t *testing.T) {
	stub := newAuthStub(t)
	stub.handler = func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/tenant/request_access" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["vat_number"] != "SE556840226601" {
			t.Errorf("vat_number = %q", body["vat_number"])
		}
		w.Header().Set("kuverta-objkey", "req-key-42")
		w.WriteHeader(http.StatusCreated)
	}

	c := MustNew(stub.config())
	req, err := c.RequestAccess(context.Background(), "SE556840226601")
	if err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}
	if req.Key != "req-key-42" {
		t.Errorf("key = %q, want req-key-42", req.Key)
	}
}

func TestMatchUsers(t *testing.T) {
	stub := newAuthStub(t)
	stub.handler = func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/tenant/ten-1/usermatch" || r.Method != http.MethodPost {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var body map[string][]string
		json.NewDecoder(r.Body).Decode(&body)
		if len(body["ssns"]) != 2 {
			t.Errorf("ssns = %v", body["ssns"])
		}
		json.NewEncoder(w).Encode([]string{"191212121212"})
	}

	c := MustNew(stub.config())
	matched, err := c.MatchUsers(context.Background(), "ten-1", []string{"191212121212", "190101010106"})
	if err != nil {
		t.Fatalf("MatchUsers: %v", err)
	}
	if len(matched) != 1 || matched[0] != "191212121212" {
		t.Errorf("matched = %v", matched)
	}
}

func TestSendContent_validatesBeforeDispatch(t *testing.T) {
	stub := newAuthStub(t)
	stub.handler = func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("invalid content reached the network: %s", r.URL.Path)
	}

	c := MustNew(stub.config())
	ct := &content.Content{Subject: "missing recipient", Type: content.TypeLetter}

	var verr *content.ValidationError
	_, err := c.SendContent(context.Background(), "ten-1", ct)
	if !errors.As(err, &verr) {
		t.Fatalf("SendContent = %v, want *content.ValidationError", err)
	}
	if n := stub.authCalls.Load(); n != 0 {
		t.Errorf("auth endpoint called %d times for invalid content, want 0", n)
	}
}

func TestSendContent_dispatch(t *testing.T) {
	stub := newAuthStub(t)
	var posted map[string]any
	stub.handler = func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/tenant/ten-1/content" || r.Method != http.MethodPost {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&posted)
		w.Header().Set("kuverta-objkey", "content-key-9")
		w.WriteHeader(http.StatusCreated)
	}

	c := MustNew(stub.config())
	ct := &content.Content{Subject: "September invoice", Type: content.TypeInvoice}
	ct.SetRecipient(content.SendToSSN, "191212121212")
	ct.AddPart(content.File{
		Name:        "invoice.pdf",
		Data:        base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 stub")),
		ContentType: "application/pdf",
	})

	receipt, err := c.SendContent(context.Background(), "ten-1", ct)
	if err != nil {
		t.Fatalf("SendContent: %v", err)
	}
	if receipt.Key != "content-key-9" {
		t.Errorf("receipt key = %q", receipt.Key)
	}
	if posted["ssn"] != "191212121212" || posted["subject"] != "September invoice" {
		t.Errorf("posted payload = %v", posted)
	}
	if _, ok := posted["retain"]; ok {
		t.Error("retain emitted though false")
	}
}

func TestAPIError_surfacesCodeAndMessage(t *testing.T) {
	stub := newAuthStub(t)
	stub.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"code":         40000,
			"long_message": "The request payload does not pass required validation",
		})
	}

	c := MustNew(stub.config())
	var aerr *APIError
	_, err := c.ListTenants(context.Background(), "")
	if !errors.As(err, &aerr) {
		t.Fatalf("ListTenants = %v, want *APIError", err)
	}
	if aerr.Code != 40000 || aerr.Status != http.StatusBadRequest {
		t.Errorf("code=%d status=%d", aerr.Code, aerr.Status)
	}
	if aerr.Message != "Request validation failed" {
		t.Errorf("catalog fallback message = %q", aerr.Message)
	}
}
