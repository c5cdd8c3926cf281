package viewdata_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/xenodash/internal/app/system/auth"
	"github.com/dalemusser/xenodash/internal/app/system/viewdata"
	"go.uber.org/zap"
)

func TestNewBaseVM_Anonymous(t *testing.T) {
	req := httptest.NewRequest("GET", "/login", nil)
	vm := viewdata.NewBaseVM(httptest.NewRecorder(), req, nil, "Login", "/")

	if vm.IsLoggedIn {
		t.Error("expected anonymous view")
	}
	if vm.Title != "Login" {
		t.Errorf("Title: got %q", vm.Title)
	}
	if vm.SiteName != viewdata.SiteName {
		t.Errorf("SiteName: got %q", vm.SiteName)
	}
}

func TestNewBaseVM_SignedIn(t *testing.T) {
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{Token: "t", SID: "s", Email: "a@example.com"})

	vm := viewdata.NewBaseVM(httptest.NewRecorder(), req, nil, "Dashboard", "/")
	if !vm.IsLoggedIn {
		t.Fatal("expected signed-in view")
	}
	if got := vm.DisplayName(); got != "a@example.com" {
		t.Errorf("DisplayName: got %q", got)
	}
}

func TestNewBaseVM_PopsAlerts(t *testing.T) {
	sm, err := auth.NewSessionManager("test-session-key-must-be-32-chars-long", "test-session", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}

	req := httptest.NewRequest("GET", "/dashboard", nil)
	rec := httptest.NewRecorder()
	sm.AddAlert(rec, req, "Invalid credentials")

	vm := viewdata.NewBaseVM(rec, req, sm, "Dashboard", "/")
	if len(vm.Alerts) != 1 || vm.Alerts[0] != "Invalid credentials" {
		t.Errorf("Alerts: got %v", vm.Alerts)
	}
}
