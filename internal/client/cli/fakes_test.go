package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/session"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

type fakeSession struct {
	authenticated bool
	name          string
	claims        session.Claims
	hasClaims     bool

	loginErr     error
	loginName    string
	lastEmail    string
	lastPassword string
	logouts      int
}

func (f *fakeSession) IsAuthenticated() bool { return f.authenticated }
func (f *fakeSession) UserName() string      { return f.name }
func (f *fakeSession) LoginUser(_ context.Context, email, password string) error {
	f.lastEmail, f.lastPassword = email, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.authenticated, f.name = true, f.loginName
	return nil
}
func (f *fakeSession) LogoutUser(context.Context) {
	f.logouts++
	f.authenticated, f.name = false, ""
}
func (f *fakeSession) Claims() (session.Claims, bool) { return f.claims, f.hasClaims }

type fakeDirectory struct {
	users      []models.User
	refreshErr error
	createErr  error
	created    []models.NewUser
	queries    []string
	refreshes  int
}

func (f *fakeDirectory) Refresh(context.Context) error {
	f.refreshes++
	if f.refreshErr != nil {
		f.users = nil
	}
	return f.refreshErr
}
func (f *fakeDirectory) Visible() []models.User { return f.users }
func (f *fakeDirectory) Search(q string) []models.User {
	f.queries = append(f.queries, q)
	var out []models.User
	for _, u := range f.users {
		if u.Matches(q) {
			out = append(out, u)
		}
	}
	return out
}
func (f *fakeDirectory) Create(_ context.Context, u models.NewUser) error {
	f.created = append(f.created, u)
	return f.createErr
}

type fakeCatalog struct {
	products   []models.Product
	refreshErr error
}

func (f *fakeCatalog) Refresh(context.Context) error {
	if f.refreshErr != nil {
		f.products = nil
	}
	return f.refreshErr
}
func (f *fakeCatalog) Products() []models.Product { return f.products }

func newTestApp(s sessionAPI, d directoryAPI, c catalogAPI) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		session:   s,
		directory: d,
		catalog:   c,
		log:       logging.Discard(),
		reader:    bufio.NewReader(strings.NewReader("")),
		out:       &out,
	}, &out
}

// stubInputs answers text prompts from texts in order and password prompts
// with password.
func stubInputs(t *testing.T, password string, texts ...string) {
	stubInputsBuf(t, password, texts...)
}

// stubInputsBuf is stubInputs that also returns the password buffers handed
// to the command, so tests can check they were cleared.
func stubInputsBuf(t *testing.T, password string, texts ...string) *[][]byte {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		i++
		return texts[i-1], nil
	}
	var issued [][]byte
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) {
		b := []byte(password)
		issued = append(issued, b)
		return b, nil
	}
	return &issued
}
