package domain

import "testing"

func sampleButtons() []Button {
	return []Button{
		{ID: "b1", Title: "Intranet", ProfileIDs: []string{"p1"}},
		{ID: "b2", Title: "Payroll", ProfileIDs: []string{"p1", "p2"}},
		{ID: "b3", Title: "Handbook", ProfileIDs: []string{"p2"}},
		{ID: "b4", Title: "Orphan", ProfileIDs: nil},
	}
}

func ids(buttons []Button) []string {
	out := make([]string, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, b.ID)
	}
	return out
}

func TestVisibleButtons_FiltersByProfile(t *testing.T) {
	all := sampleButtons()

	got := VisibleButtons(all, &User{ID: "u1", Role: RoleUser, ProfileID: "p1"})
	if len(got) != 2 || got[0].ID != "b1" || got[1].ID != "b2" {
		t.Fatalf("profile p1: got %v, want [b1 b2]", ids(got))
	}

	got = VisibleButtons(all, &User{ID: "u2", Role: RoleUser, ProfileID: "p2"})
	if len(got) != 2 || got[0].ID != "b2" || got[1].ID != "b3" {
		t.Fatalf("profile p2: got %v, want [b2 b3]", ids(got))
	}
}

func TestVisibleButtons_NoProfileSeesNothing(t *testing.T) {
	all := sampleButtons()

	if got := VisibleButtons(all, &User{ID: "admin", Role: RoleAdmin}); len(got) != 0 {
		t.Fatalf("admin without profile: got %v, want empty", ids(got))
	}
	if got := VisibleButtons(all, nil); len(got) != 0 {
		t.Fatalf("nil principal: got %v, want empty", ids(got))
	}
}

func TestVisibleButtons_OrderIndependentAsSet(t *testing.T) {
	all := sampleButtons()
	reversed := make([]Button, len(all))
	for i, b := range all {
		reversed[len(all)-1-i] = b
	}

	principal := &User{ID: "u1", Role: RoleUser, ProfileID: "p2"}
	a := VisibleButtons(all, principal)
	b := VisibleButtons(reversed, principal)

	if len(a) != len(b) {
		t.Fatalf("set sizes differ: %d vs %d", len(a), len(b))
	}
	seen := make(map[string]bool, len(a))
	for _, btn := range a {
		seen[btn.ID] = true
	}
	for _, btn := range b {
		if !seen[btn.ID] {
			t.Fatalf("button %s missing from permuted result", btn.ID)
		}
	}
}

func TestVisibleButtons_EmptyProfileSetMatchesNobody(t *testing.T) {
	all := []Button{{ID: "b1", ProfileIDs: []string{}}}
	if got := VisibleButtons(all, &User{ProfileID: "p1"}); len(got) != 0 {
		t.Fatalf("empty profile set: got %v, want empty", ids(got))
	}
}

func TestLinkValidate(t *testing.T) {
	cases := []struct {
		name string
		link Link
		err  error
	}{
		{"external ok", Link{Kind: LinkExternal, URL: "https://example.com"}, nil},
		{"external empty url", Link{Kind: LinkExternal}, ErrInvalidLink},
		{"document ok", Link{Kind: LinkDocument, URL: "https://docs.example.com/d/1"}, nil},
		{"pdf ok", Link{Kind: LinkPDF, Filename: "1719414000000-a1b2c3-guide.pdf"}, nil},
		{"pdf missing filename", Link{Kind: LinkPDF, URL: "ignored"}, ErrFilenameRequired},
		{"unknown kind", Link{Kind: "ftp", URL: "ftp://x"}, ErrInvalidLink},
	}
	for _, tc := range cases {
		if err := tc.link.Validate(); err != tc.err {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.err)
		}
	}
}

func TestButtonShapeIsValid(t *testing.T) {
	for _, s := range []ButtonShape{ShapeSquare, ShapeRounded, ShapeCircle} {
		if !s.IsValid() {
			t.Errorf("shape %q should be valid", s)
		}
	}
	if ButtonShape("hexagon").IsValid() {
		t.Error("unknown shape accepted")
	}
}
