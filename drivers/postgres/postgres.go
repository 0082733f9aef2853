package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/gridbase-inc/citysift/constants"
	"github.com/gridbase-inc/citysift/drivers/abstract"
	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// selectCitiesTmpl reads the whole table ordered by id so grouping stays
// reproducible across runs; %s is the sanitized table identifier.
const selectCitiesTmpl = `SELECT id, city, city_ascii, lat, lng, country, admin_name, capital, population FROM %s ORDER BY id`

// Postgres reads city rows from one table. The loosely typed columns are
// expected as text; NULL normalizes to an absent field.
type Postgres struct {
	config *Config
	client *sqlx.DB
}

type cityRow struct {
	ID         int64          `db:"id"`
	City       string         `db:"city"`
	CityASCII  string         `db:"city_ascii"`
	Lat        float64        `db:"lat"`
	Lng        float64        `db:"lng"`
	Country    string         `db:"country"`
	AdminName  sql.NullString `db:"admin_name"`
	Capital    sql.NullString `db:"capital"`
	Population sql.NullString `db:"population"`
}

func (r cityRow) toCity() types.City {
	return types.City{
		ID:         r.ID,
		Name:       r.City,
		NameASCII:  r.CityASCII,
		Lat:        r.Lat,
		Lng:        r.Lng,
		Country:    r.Country,
		AdminName:  rawText(r.AdminName),
		Capital:    rawText(r.Capital),
		Population: rawText(r.Population),
	}
}

func rawText(column sql.NullString) json.RawMessage {
	if !column.Valid {
		return nil
	}
	raw, err := json.Marshal(column.String)
	if err != nil {
		return nil
	}
	return raw
}

func (p *Postgres) GetConfigRef() abstract.Config {
	p.config = &Config{}
	return p.config
}

func (p *Postgres) Spec() any {
	return Config{}
}

func (p *Postgres) Type() string {
	return string(types.PostgresSource)
}

func (p *Postgres) Setup(ctx context.Context) error {
	sqlxDB, err := sqlx.Open("pgx", p.config.Connection.String())
	if err != nil {
		return fmt.Errorf("failed to connect database: %s", err)
	}
	p.client = sqlxDB.Unsafe()

	// force a connection and test that it worked
	return utils.RetryExec(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		return p.client.PingContext(pingCtx)
	}, p.config.RetryCount, constants.DefaultRetryTimeout)
}

func (p *Postgres) Load(ctx context.Context) ([]types.City, error) {
	query := fmt.Sprintf(selectCitiesTmpl, pgx.Identifier{p.config.Table}.Sanitize())

	var rows []cityRow
	if err := p.client.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to read cities from %s: %s", p.config.Table, err)
	}

	cities := make([]types.City, 0, len(rows))
	for _, row := range rows {
		cities = append(cities, row.toCity())
	}

	return cities, nil
}

func (p *Postgres) Close(_ context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}

func init() {
	abstract.RegisteredDrivers[types.PostgresSource] = func() abstract.Driver {
		return new(Postgres)
	}
}
