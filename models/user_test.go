package models_test

import (
	"encoding/json"
	"testing"

	"github.com/HTeam-Ecommerce/hteam-commerce-backend/models"
)

func TestRoleListDecodesStrings(t *testing.T) {
	var roles models.RoleList
	if err := json.Unmarshal([]byte(`["admin","customer"]`), &roles); err != nil {
		t.Fatal(err)
	}
	if len(roles) != 2 || roles[0].Name != "admin" || roles[1].Name != "customer" {
		t.Fatalf("unexpected roles: %+v", roles)
	}
}

func TestRoleListDecodesObjects(t *testing.T) {
	var roles models.RoleList
	if err := json.Unmarshal([]byte(`[{"name":"admin"},{"name":"customer"}]`), &roles); err != nil {
		t.Fatal(err)
	}
	if len(roles) != 2 || roles[0].Name != "admin" || roles[1].Name != "customer" {
		t.Fatalf("unexpected roles: %+v", roles)
	}
}

func TestRoleListDecodesMixedShapes(t *testing.T) {
	var roles models.RoleList
	if err := json.Unmarshal([]byte(`["admin",{"name":"customer"}]`), &roles); err != nil {
		t.Fatal(err)
	}
	if len(roles) != 2 || roles[0].Name != "admin" || roles[1].Name != "customer" {
		t.Fatalf("unexpected roles: %+v", roles)
	}
}

func TestRoleListRejectsGarbage(t *testing.T) {
	var roles models.RoleList
	if err := json.Unmarshal([]byte(`[42]`), &roles); err == nil {
		t.Fatal("want error for numeric role entry")
	}
}

func TestUserHasRole(t *testing.T) {
	u := models.User{Roles: models.RoleList{{Name: "admin"}}}
	if !u.HasRole("admin") || u.HasRole("customer") {
		t.Fatal("HasRole lookup wrong")
	}
}
