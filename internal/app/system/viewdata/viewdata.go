// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/xenodash/internal/app/system/auth"
	"github.com/gorilla/csrf"
)

// SiteName is shown in the navbar and page titles.
const SiteName = "Xeno Dashboard"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(w, r, h.SessionMgr, "Page Title", "/"),
//	}
type BaseVM struct {
	SiteName string

	// User context (from session middleware)
	IsLoggedIn bool
	UserName   string
	UserEmail  string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string

	// One-shot messages shown with window.alert on load
	Alerts []string
}

// NewBaseVM creates a fully populated BaseVM for a page. Pending alerts are
// popped from the session, so it must run before the response is written.
// sm may be nil, in which case no alerts are read.
func NewBaseVM(w http.ResponseWriter, r *http.Request, sm *auth.SessionManager, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    SiteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if u, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.UserName = u.Name
		vm.UserEmail = u.Email
	}

	if sm != nil {
		vm.Alerts = sm.PopAlerts(w, r)
	}

	return vm
}

// DisplayName is what the navbar shows for the signed-in user.
func (vm BaseVM) DisplayName() string {
	if vm.UserName != "" {
		return vm.UserName
	}
	if vm.UserEmail != "" {
		return vm.UserEmail
	}
	return "Signed in"
}
