package features

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/ffreport/internal/cache"
	"github.com/omarshaarawi/ffreport/internal/models"
)

const sleeperFixture = `{
  "4984": {"full_name": "Josh Allen", "team": "BUF", "position": "QB", "fantasy_positions": ["QB"],
           "weight": "237", "height": "77", "age": 29, "years_exp": 7, "birth_date": "1996-05-21"},
  "1111": {"full_name": "Amon-Ra St. Brown", "team": "DET", "position": "WR", "fantasy_positions": ["WR"],
           "weight": "202", "height": "6'0\"", "age": "25", "years_exp": 4, "birth_date": "1999-10-24"},
  "2001": {"full_name": "Big Tackle", "team": "WSH", "position": "DT", "fantasy_positions": ["DL"],
           "weight": "330", "height": "75"},
  "2002": {"full_name": "Fast Safety", "team": "WAS", "position": "S", "fantasy_positions": ["DB"],
           "weight": "170", "height": "72"},
  "2003": {"full_name": "Loose Agent", "team": null, "position": "LB", "fantasy_positions": ["LB", "DL"],
           "weight": "240"},
  "WAS":  {"team": "WAS", "position": "DEF"}
}`

func serve(t *testing.T, body string, status int) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestBeefFetch(t *testing.T) {
	srv, _ := serve(t, sleeperFixture, http.StatusOK)
	records, err := NewBeef(srv.URL, nil).Fetch(context.Background())
	require.NoError(t, err)

	allen := records["josh-allen-buf"]
	assert.Equal(t, 237, allen.Weight)
	assert.Equal(t, `6'5"`, allen.Height)
	assert.Equal(t, 77, allen.HeightInches)
	assert.Equal(t, 29, allen.Age)
	assert.Equal(t, 0.474, allen.TABBU)
	assert.Equal(t, "1996-05-21", allen.BirthDate)
	assert.Equal(t, "O", allen.PositionType)

	stbrown := records["amonra-st-brown-det"]
	assert.Equal(t, 72, stbrown.HeightInches)
	assert.Equal(t, 25, stbrown.Age)

	dst, ok := records["WAS"]
	require.True(t, ok)
	assert.Equal(t, models.PositionDST, dst.Position)
	assert.Equal(t, 500, dst.Weight)
	assert.Equal(t, 1.0, dst.TABBU)

	_, ok = records["?"]
	assert.False(t, ok)
	assert.Contains(t, records, "loose-agent-?")
}

func TestIndexLookup(t *testing.T) {
	ix := NewIndex("beef", map[string]Record{
		"josh-allen-buf":         {FullName: "Josh Allen", Team: "BUF", Weight: 237},
		"josh-allen-jax":         {FullName: "Josh Allen", Team: "JAX", Weight: 255},
		"kenneth-walker-sea":     {FullName: "Kenneth Walker III", Team: "SEA", Weight: 211},
		"marquise-brown-kc":      {FullName: "Marquise Brown", Team: "KC", Weight: 170},
		"WAS":                    {FullName: "WAS D/ST", Team: "WAS", Position: models.PositionDST, Weight: 500},
		"dj-moore-chi":           {FullName: "DJ Moore", Team: "CHI", Weight: 210},
		"christian-mccaffrey-sf": {FullName: "Christian McCaffrey", Team: "SF", Weight: 210},
	})

	tests := []struct {
		name, team, pos string
		weight          int
	}{
		{"Josh Allen", "BUF", "QB", 237},
		{"Josh Allen", "JAX", "LB", 255},
		{"Kenneth Walker III", "SEA", "RB", 211},
		{"Commanders D/ST", "WSH", models.PositionDST, 500},
		{"D.J. Moore", "CHI", "WR", 210},
		{"Christian McCaffery", "SF", "RB", 210},
		{"Marquise Brown", "ARI", "WR", 0},
		{"Nobody Here", "KC", "WR", 0},
		{"Ghost D/ST", "KC", models.PositionDST, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.team, func(t *testing.T) {
			assert.Equal(t, tt.weight, ix.Lookup(tt.name, tt.team, tt.pos).Weight)
		})
	}

	var nilIndex *Index
	assert.Equal(t, Record{}, nilIndex.Lookup("Josh Allen", "BUF", "QB"))
	assert.Zero(t, nilIndex.Len())
}

const finesFixture = `<html><body>
<table><thead><tr><th>Player</th><th>Pos</th><th>Team</th><th>Infraction</th><th>Amount</th></tr></thead>
<tbody>
<tr><td>Josh Allen</td><td>QB</td><td>BUF</td><td>Unsportsmanlike</td><td>$14,069</td></tr>
<tr><td>Josh Allen</td><td>QB</td><td>BUF</td><td>Uniform</td><td>$5,000</td></tr>
<tr><td>Big Tackle</td><td>DT</td><td>WSH</td><td>Roughness</td><td>$10,927</td></tr>
<tr><td>Nobody</td><td>WR</td><td>KC</td><td>Appeal pending</td><td>-</td></tr>
</tbody></table>
<table><tr><th>Unrelated</th></tr><tr><td>x</td></tr></table>
</body></html>`

func TestFinesFetch(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(finesFixture))
	}))
	t.Cleanup(srv.Close)

	f := NewFines(srv.URL+"/nfl/fines/_/year/%d", 2025, nil)
	assert.Equal(t, "2025", f.Key())
	records, err := f.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/nfl/fines/_/year/2025", path)
	require.Len(t, records, 2)
	assert.Equal(t, 19069.0, records["josh-allen-buf"].Fines)
	assert.Equal(t, 10927.0, records["big-tackle-was"].Fines)
}

const scoreboardFixture = `{"events": [
  {"shortName": "GB @ CLE", "competitions": [{"date": "2025-10-05T17:00Z", "attendance": 67431,
    "venue": {"address": {"city": "Cleveland", "state": "OH", "country": "USA"}}}]},
  {"shortName": "MIN @ WSH", "competitions": [{"date": "2025-10-05T20:25Z", "attendance": 0,
    "venue": {"address": {"city": "Landover", "state": "MD", "country": "USA"}}}]},
  {"shortName": "JAX @ LAR", "competitions": [{"date": "2025-10-12T13:30Z", "attendance": 60114,
    "venue": {"address": {"city": "London", "country": "England"}}}]},
  {"shortName": "TBD", "competitions": [{"date": "2025-10-05T17:00Z", "attendance": 1}]}
]}`

func TestAttendanceFetch(t *testing.T) {
	var week string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		week = r.URL.Query().Get("week")
		w.Write([]byte(scoreboardFixture))
	}))
	t.Cleanup(srv.Close)

	games, err := NewAttendance(srv.URL, 5, nil).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5", week)
	assert.Equal(t, 2, games.Len())

	require.Len(t, games["CLE"], 1)
	cle := games["CLE"][0]
	assert.Equal(t, time.Date(2025, 10, 5, 17, 0, 0, 0, time.UTC), cle.Date)
	assert.Equal(t, 67431, cle.Attendance)
	assert.Equal(t, "CLE", cle.HomeTeam)
	assert.Equal(t, "GB", cle.AwayTeam)
	assert.Equal(t, cle, games["GB"][0])

	assert.Empty(t, games["WAS"])
	assert.Equal(t, "London", games["JAX"][0].City)
}

type stubSource struct {
	records map[string]Record
	err     error
	calls   int
}

func (s *stubSource) Name() string { return "beef" }
func (s *stubSource) Key() string  { return "players" }
func (s *stubSource) Fetch(context.Context) (map[string]Record, error) {
	s.calls++
	return s.records, s.err
}

func TestLoadCachesWithinTTL(t *testing.T) {
	store := cache.NewFileStore(t.TempDir())
	src := &stubSource{records: map[string]Record{"a-buf": {FullName: "A", Team: "BUF", Weight: 200}}}
	l := NewLoader(store, time.Hour, false)

	first, err := Load[map[string]Record](context.Background(), l, src)
	require.NoError(t, err)
	second, err := Load[map[string]Record](context.Background(), l, src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls)

	l.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = Load[map[string]Record](context.Background(), l, src)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestLoadFallsBackToStaleCache(t *testing.T) {
	store := cache.NewFileStore(t.TempDir())
	require.NoError(t, store.Set(context.Background(), "beef", "players", map[string]Record{"a-buf": {Weight: 1}}))

	l := NewLoader(store, time.Nanosecond, false)
	l.now = func() time.Time { return time.Now().Add(time.Hour) }
	src := &stubSource{err: errors.New("offline")}

	records, err := Load[map[string]Record](context.Background(), l, src)
	require.NoError(t, err)
	assert.Equal(t, 1, records["a-buf"].Weight)
	assert.Equal(t, 1, src.calls)
}

func TestLoadOffline(t *testing.T) {
	src := &stubSource{records: map[string]Record{"x": {}}}
	l := NewLoader(cache.NewFileStore(t.TempDir()), time.Hour, true)

	_, err := Load[map[string]Record](context.Background(), l, src)
	require.ErrorIs(t, err, cache.ErrMiss)
	assert.Zero(t, src.calls)
}

func TestLoadAllDegradesAndJoins(t *testing.T) {
	beefSrv, _ := serve(t, sleeperFixture, http.StatusOK)
	finesSrv, _ := serve(t, "", http.StatusInternalServerError)
	scoreSrv, _ := serve(t, scoreboardFixture, http.StatusOK)

	l := NewLoader(cache.NewFileStore(t.TempDir()), time.Hour, false)
	set, err := LoadAll(context.Background(), l, Sources{
		Beef:       NewBeef(beefSrv.URL, nil),
		Fines:      NewFines(finesSrv.URL, 2025, nil),
		Attendance: NewAttendance(scoreSrv.URL, 5, nil),
	})
	require.NoError(t, err)
	assert.Greater(t, set.Beef.Len(), 0)
	assert.Zero(t, set.Fines.Len())

	players := set.Join([]models.LeaguePlayer{
		{PlayerWeek: models.PlayerWeek{Name: "Josh Allen", ProTeam: "BUF", Position: "QB"}, TeamAbbrev: "T1"},
		{PlayerWeek: models.PlayerWeek{Name: "Commanders D/ST", ProTeam: "WSH", Position: models.PositionDST}, TeamAbbrev: "T1"},
		{PlayerWeek: models.PlayerWeek{Name: "Some Guard", ProTeam: "CLE", Position: "TE"}, TeamAbbrev: "T2"},
	})
	require.Len(t, players, 3)
	assert.Equal(t, 237, players[0].Features.Weight)
	assert.Equal(t, "1996-05-21", players[0].Features.BirthDate)
	assert.Equal(t, 500, players[1].Features.Weight)
	assert.Zero(t, players[2].Features.Weight)
	require.Len(t, players[2].Games, 1)
	assert.Equal(t, "Cleveland", players[2].Games[0].City)
}

func TestLoadAllStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewLoader(cache.NewFileStore(t.TempDir()), time.Hour, false)
	_, err := LoadAll(ctx, l, Sources{Beef: &stubSource{err: context.Canceled}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFetchersKeepBreakerAcrossSources(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetchers(srv.Client())
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.Beef(srv.URL).Fetch(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}

	_, err := f.Beef(srv.URL).Fetch(ctx)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(3), hits.Load())

	_, err = f.Attendance(srv.URL, 5).Fetch(ctx)
	assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(4), hits.Load())
}
