package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mxshop-next/internal/constants"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	return svc
}

func mustEnforce(t *testing.T, svc *Service, userID uint, obj, act string) bool {
	t.Helper()
	allow, err := svc.EnforceUser(userID, obj, act)
	if err != nil {
		t.Fatalf("enforce %d %s %s failed: %v", userID, act, obj, err)
	}
	return allow
}

func TestAnonymousGuestPolicies(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if !mustEnforce(t, svc, 0, "/api/v1/goods/42", "GET") {
		t.Fatalf("anonymous should browse products")
	}
	if !mustEnforce(t, svc, 0, "/api/v1/code", "post") {
		t.Fatalf("anonymous should request sms code")
	}
	if mustEnforce(t, svc, 0, "/api/v1/shopcarts", "GET") {
		t.Fatalf("anonymous must not read carts")
	}
	if mustEnforce(t, svc, 0, "/api/v1/goods", "POST") {
		t.Fatalf("anonymous must not create products")
	}
}

func TestMemberAndCatalogAdmin(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.AssignUserRole(1, constants.RoleMember); err != nil {
		t.Fatalf("assign member failed: %v", err)
	}
	if err := svc.AssignUserRole(2, constants.RoleCatalogAdmin); err != nil {
		t.Fatalf("assign catalog admin failed: %v", err)
	}

	if !mustEnforce(t, svc, 1, "/api/v1/shopcarts/3", "DELETE") {
		t.Fatalf("member should manage cart")
	}
	if !mustEnforce(t, svc, 1, "/api/v1/goods", "GET") {
		t.Fatalf("member should inherit guest browsing")
	}
	if mustEnforce(t, svc, 1, "/api/v1/goods", "POST") {
		t.Fatalf("member must not create products")
	}
	if !mustEnforce(t, svc, 2, "/api/v1/goods", "POST") {
		t.Fatalf("catalog admin should create products")
	}
	if !mustEnforce(t, svc, 2, "/api/v1/orders/9", "GET") {
		t.Fatalf("catalog admin should inherit member routes")
	}
	if mustEnforce(t, svc, 3, "/api/v1/orders", "GET") {
		t.Fatalf("user without role must be denied")
	}
}

func TestAssignAndRevokeUserRole(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.AssignUserRole(5, constants.RoleMember); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if err := svc.AssignUserRole(5, constants.RoleMember); err != nil {
		t.Fatalf("assign should be idempotent: %v", err)
	}
	if err := svc.AssignUserRole(5, constants.RoleCatalogAdmin); err != nil {
		t.Fatalf("assign admin failed: %v", err)
	}
	roles, err := svc.GetUserRoles(5)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 2 || roles[0] != constants.RoleCatalogAdmin || roles[1] != constants.RoleMember {
		t.Fatalf("unexpected roles: %v", roles)
	}

	if err := svc.RevokeUserRole(5, constants.RoleCatalogAdmin); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if mustEnforce(t, svc, 5, "/api/v1/goods", "POST") {
		t.Fatalf("revoked role should no longer allow POST /goods")
	}
}

func TestBootstrapIdempotent(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	if !mustEnforce(t, svc, 0, "/api/v1/categorys", "GET") {
		t.Fatalf("guest policy lost after re-bootstrap")
	}
}

func TestOwnerOrReadOnly(t *testing.T) {
	cases := []struct {
		method  string
		owner   uint
		user    uint
		allowed bool
	}{
		{"GET", 1, 2, true},
		{"head", 1, 0, true},
		{"DELETE", 1, 1, true},
		{"PATCH", 1, 2, false},
		{"POST", 0, 0, false},
	}
	for _, tc := range cases {
		if got := OwnerOrReadOnly(tc.method, tc.owner, tc.user); got != tc.allowed {
			t.Fatalf("OwnerOrReadOnly(%s,%d,%d) want %v got %v", tc.method, tc.owner, tc.user, tc.allowed, got)
		}
	}
}

func TestNormalizeHelpers(t *testing.T) {
	if got := NormalizeObject("/api/v1/goods/1"); got != "/goods/1" {
		t.Fatalf("unexpected object: %s", got)
	}
	if got := NormalizeObject("api/v1"); got != "/" {
		t.Fatalf("unexpected root object: %s", got)
	}
	if got, err := NormalizeRole("catalog admin"); err != nil || got != "role:catalog_admin" {
		t.Fatalf("unexpected role: %s err=%v", got, err)
	}
	if _, err := NormalizeRole("  "); err == nil {
		t.Fatalf("expected error for empty role")
	}
	if SubjectForUser(0) != SubjectAnonymous || SubjectForUser(7) != "user:7" {
		t.Fatalf("unexpected subjects")
	}
}
