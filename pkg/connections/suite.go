// Package connections is the smoke suite for the connections module of the
// backend: module health, scoring and early-signal mocks, the accounts list,
// profile comparison, stats and config.
package connections

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/vertti/smokecheck/pkg/check"
	"github.com/vertti/smokecheck/pkg/endpoint"
	"github.com/vertti/smokecheck/pkg/expect"
	"github.com/vertti/smokecheck/pkg/logger"
	"github.com/vertti/smokecheck/pkg/results"
)

// Check names, in run order.
const (
	NameBackendHealth = "Backend Health Check"
	NameModuleHealth  = "Connections Module Health"
	NameScoreMock     = "Connections Score Mock API"
	NameAccounts      = "Connections Accounts List"
	NameCompare       = "Connections Compare API"
	NameStats         = "Connections Stats API"
	NameConfig        = "Connections Config API"
	NameEarlySignal   = "Early Signal Mock API"
)

// Placeholder handles compared when the accounts list has fewer than two items.
const (
	PlaceholderLeft  = "mock_user_1"
	PlaceholderRight = "mock_user_2"
)

// DefaultAccountsLimit is the page size requested from the accounts list.
const DefaultAccountsLimit = 2

// CompareRequest is the body posted to the compare endpoint.
type CompareRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Suite runs the connections checks in a fixed order.
type Suite struct {
	Verifier      *endpoint.Verifier
	AccountsLimit int
	Log           *logger.ConsoleLogger

	handles []string // from the accounts check, consumed by compare
}

// Run executes every check in order, recording each into c, and returns
// the summary.
func (s *Suite) Run(c *results.Collector) results.Summary {
	s.handles = nil

	c.Record(s.backendHealth())
	c.Record(s.moduleHealth())
	c.Record(s.scoreMock())
	c.Record(s.accounts())
	c.Record(s.compare())
	c.Record(s.stats())
	c.Record(s.config())
	c.Record(s.earlySignal())

	return c.Summary()
}

func (s *Suite) backendHealth() check.Result {
	return s.Verifier.Verify(endpoint.Check{
		Name:   NameBackendHealth,
		Path:   "/api/health",
		Assert: expect.True("ok"),
		Describe: func(r *endpoint.Response) string {
			return fmt.Sprintf("status %d, data: %s", r.Status, r.Body.Raw)
		},
	})
}

func (s *Suite) moduleHealth() check.Result {
	return s.Verifier.Verify(endpoint.Check{
		Name: NameModuleHealth,
		Path: "/api/connections/health",
		Assert: expect.All(
			expect.True("ok"),
			expect.Equal("module", "connections"),
			expect.Bool("enabled"),
		),
		Describe: func(r *endpoint.Response) string {
			return fmt.Sprintf("status %d, module: %s, enabled: %s",
				r.Status, valueOrNone(r, "module"), valueOrNone(r, "enabled"))
		},
	})
}

func (s *Suite) scoreMock() check.Result {
	return s.Verifier.Verify(dataCheck(NameScoreMock, "/api/connections/score/mock", "has mock data"))
}

func (s *Suite) accounts() check.Result {
	limit := s.AccountsLimit
	if limit <= 0 {
		limit = DefaultAccountsLimit
	}

	result, resp := s.Verifier.VerifyResponse(endpoint.Check{
		Name:   NameAccounts,
		Path:   "/api/connections/accounts?limit=" + strconv.Itoa(limit),
		Assert: expect.All(expect.True("ok"), expect.Array("data.items")),
		Describe: func(r *endpoint.Response) string {
			return fmt.Sprintf("status %d, accounts found: %d", r.Status, len(accountItems(r)))
		},
	})

	if resp != nil && resp.Decoded {
		for i, item := range accountItems(resp) {
			handle := item.Get("handle").String()
			if handle == "" {
				handle = "test" + strconv.Itoa(i+1)
			}
			s.handles = append(s.handles, handle)
		}
	}
	return result
}

// compareRequest pairs the first two accounts, or the placeholders when
// fewer than two are known.
func (s *Suite) compareRequest() CompareRequest {
	if len(s.handles) >= 2 {
		return CompareRequest{Left: s.handles[0], Right: s.handles[1]}
	}
	return CompareRequest{Left: PlaceholderLeft, Right: PlaceholderRight}
}

func (s *Suite) compare() check.Result {
	body := s.compareRequest()
	s.Log.Debugf("comparing %q with %q", body.Left, body.Right)

	// 404 means the collaborator has no profiles for these handles, which is
	// normal against mock data.
	return s.Verifier.Verify(endpoint.Check{
		Name:     NameCompare,
		Method:   http.MethodPost,
		Path:     "/api/connections/compare",
		Body:     body,
		Tolerate: []int{http.StatusNotFound},
		Assert:   expect.True("ok"),
		Describe: func(r *endpoint.Response) string {
			if r.Status == http.StatusNotFound {
				return fmt.Sprintf("status %d, profiles not found (expected for mock data)", r.Status)
			}
			return fmt.Sprintf("status %d, comparison of %s and %s", r.Status, body.Left, body.Right)
		},
	})
}

func (s *Suite) stats() check.Result {
	return s.Verifier.Verify(endpoint.Check{
		Name:   NameStats,
		Path:   "/api/connections/stats",
		Assert: expect.All(expect.True("ok"), expect.Object("data"), expect.Int("data.total_profiles")),
		Describe: func(r *endpoint.Response) string {
			return fmt.Sprintf("status %d, total profiles: %s", r.Status, valueOrNone(r, "data.total_profiles"))
		},
	})
}

func (s *Suite) config() check.Result {
	return s.Verifier.Verify(dataCheck(NameConfig, "/api/connections/config", "has config data"))
}

func (s *Suite) earlySignal() check.Result {
	return s.Verifier.Verify(dataCheck(NameEarlySignal, "/api/connections/early-signal/mock", "has early signal data"))
}

// dataCheck is the common {ok: true, data: {...}} shape.
func dataCheck(name, path, label string) endpoint.Check {
	return endpoint.Check{
		Name:   name,
		Path:   path,
		Assert: expect.All(expect.True("ok"), expect.Object("data")),
		Describe: func(r *endpoint.Response) string {
			return fmt.Sprintf("status %d, %s: %t", r.Status, label, r.Body.Get("data").Exists())
		},
	}
}

// accountItems returns data.items, or nil when it is not an array.
func accountItems(r *endpoint.Response) []gjson.Result {
	items := r.Body.Get("data.items")
	if !items.IsArray() {
		return nil
	}
	return items.Array()
}

func valueOrNone(r *endpoint.Response, path string) string {
	v := r.Body.Get(path)
	if !v.Exists() {
		return "none"
	}
	return v.String()
}
