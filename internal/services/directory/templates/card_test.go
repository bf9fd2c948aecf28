package templates

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/text/language"

	directoryi18n "github.com/louisbranch/userdirectory/internal/services/directory/i18n"
	"github.com/louisbranch/userdirectory/internal/services/directory/users"
)

func leanne() users.User {
	return users.User{
		ID:       1,
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "Sincere@april.biz",
		Phone:    "1-770-736-8031 x56442",
		Website:  "hildegard.org",
		Address:  users.Address{Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", Zipcode: "92998-3874"},
		Company:  &users.Company{Name: "Romaguera-Crona"},
	}
}

func TestUserCardRendersContactBlocks(t *testing.T) {
	t.Parallel()

	nodes := parseFragment(t, render(t, context.Background(), UserCard(leanne(), 0)))
	card := single(t, findAll(nodes, byClass("user-card")), "cards")

	if got := textOf(single(t, findAll([]*html.Node{card}, byClass("user-avatar")), "avatars")); got != "LG" {
		t.Fatalf("avatar = %q, want LG", got)
	}
	if got := textOf(single(t, findAll(nodes, byTag("h3")), "names")); got != "Leanne Graham" {
		t.Fatalf("name = %q", got)
	}
	if got := textOf(single(t, findAll(nodes, byClass("username")), "handles")); got != "@Bret" {
		t.Fatalf("handle = %q", got)
	}

	links := findAll(nodes, byTag("a"))
	if len(links) != 3 {
		t.Fatalf("found %d links, want 3", len(links))
	}
	wantHrefs := []string{"mailto:Sincere@april.biz", "tel:1-770-736-8031 x56442", "http://hildegard.org"}
	for i, want := range wantHrefs {
		if got, _ := attr(links[i], "href"); got != want {
			t.Fatalf("link %d href = %q, want %q", i, got, want)
		}
	}
	if got, _ := attr(links[2], "target"); got != "_blank" {
		t.Fatalf("website target = %q, want _blank", got)
	}
	if got, _ := attr(links[2], "rel"); got != "noopener" {
		t.Fatalf("website rel = %q, want noopener", got)
	}

	company := single(t, findAll(nodes, byClass("company")), "company blocks")
	if got := textOf(company); got != "Romaguera-Crona" {
		t.Fatalf("company = %q", got)
	}

	details := single(t, findAll(nodes, byClass("address-details")), "address blocks")
	if got := len(findAll([]*html.Node{details}, byTag("br"))); got != 1 {
		t.Fatalf("address line breaks = %d, want 1", got)
	}
	if got := textOf(details); got != "Kulas Light, Apt. 556Gwenborough, 92998-3874" {
		t.Fatalf("address text = %q", got)
	}
}

func TestUserCardOmitsCompanyWhenAbsent(t *testing.T) {
	t.Parallel()

	u := leanne()
	u.Company = nil
	nodes := parseFragment(t, render(t, context.Background(), UserCard(u, 0)))
	if got := len(findAll(nodes, byClass("company"))); got != 0 {
		t.Fatalf("company blocks = %d, want 0", got)
	}
	if got := len(findAll(nodes, byClass("contact-item"))); got != 3 {
		t.Fatalf("contact items = %d, want 3", got)
	}
}

func TestUserCardOmitsSuiteSeparator(t *testing.T) {
	t.Parallel()

	u := leanne()
	u.Address.Suite = ""
	nodes := parseFragment(t, render(t, context.Background(), UserCard(u, 0)))
	details := single(t, findAll(nodes, byClass("address-details")), "address blocks")
	if got := textOf(details); got != "Kulas LightGwenborough, 92998-3874" {
		t.Fatalf("address text = %q", got)
	}
}

func TestUserCardEscapesMarkupInFields(t *testing.T) {
	t.Parallel()

	u := leanne()
	u.Name = `<script>alert("x")</script> Doe`
	u.Username = `"><img src=x onerror=alert(1)>`
	u.Company = &users.Company{Name: "<b>Evil</b>"}
	markup := render(t, context.Background(), UserCard(u, 0))
	if strings.Contains(markup, "<script>") || strings.Contains(markup, "<img") || strings.Contains(markup, "<b>") {
		t.Fatalf("markup contains unescaped user content: %s", markup)
	}

	nodes := parseFragment(t, markup)
	if got := textOf(single(t, findAll(nodes, byTag("h3")), "names")); got != u.Name {
		t.Fatalf("name text = %q, want %q", got, u.Name)
	}
}

func TestUserCardSanitizesUnsafeLinks(t *testing.T) {
	t.Parallel()

	u := leanne()
	u.Website = "javascript:alert(1)"
	nodes := parseFragment(t, render(t, context.Background(), UserCard(u, 0)))
	for _, link := range findAll(nodes, byTag("a")) {
		href, _ := attr(link, "href")
		if strings.HasPrefix(strings.ToLower(href), "javascript:") {
			t.Fatalf("unsafe href rendered: %q", href)
		}
	}
}

func TestUserCardPublishesEntranceDelay(t *testing.T) {
	t.Parallel()

	nodes := parseFragment(t, render(t, context.Background(), UserCard(leanne(), 3)))
	card := single(t, findAll(nodes, byClass("user-card")), "cards")
	style, _ := attr(card, "style")
	if !strings.Contains(style, "--enter-delay: 300ms") {
		t.Fatalf("style = %q, want 300ms delay", style)
	}
	if !strings.Contains(style, "--enter-duration: 500ms") || !strings.Contains(style, "--enter-offset: 20px") {
		t.Fatalf("style = %q, want duration and offset", style)
	}
}

func TestUserCardLocalizesHeading(t *testing.T) {
	t.Parallel()

	ctx := WithLocalizer(context.Background(), directoryi18n.Printer(language.BrazilianPortuguese))
	nodes := parseFragment(t, render(t, ctx, UserCard(leanne(), 0)))
	if got := textOf(single(t, findAll(nodes, byTag("h4")), "headings")); got != "Endereço" {
		t.Fatalf("heading = %q, want Endereço", got)
	}
}
