package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Jrmarques7/ISABELA-TCC/config"
	"github.com/Jrmarques7/ISABELA-TCC/model"
)

type sqlStore struct {
	db      *sql.DB
	backend string
	now     func() time.Time
}

func newSQLStore(db *sql.DB, backend string) *sqlStore {
	return &sqlStore{db: db, backend: backend, now: time.Now}
}

// rebind turns ? placeholders into the $n form when the backend needs it.
func (s *sqlStore) rebind(query string) string {
	if s.backend != config.Postgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (s *sqlStore) Create(ctx context.Context, r model.SurveyResponse) (int64, error) {
	q12, err := encodeList(r.Q12)
	if err != nil {
		return 0, errors.Wrap(err, "db.insert_response.q12")
	}
	q15, err := encodeList(r.Q15)
	if err != nil {
		return 0, errors.Wrap(err, "db.insert_response.q15")
	}

	var id int64
	err = s.db.QueryRowContext(ctx, s.rebind(`
		INSERT INTO respostas (
			data_envio, q11, q12, q13, q14_dialogo, q14_formato, q15,
			q16_estrutura, q16_vinculo, q16_carga, q16_fluxo, q16_sistematizacao
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`),
		s.now().UTC().Truncate(time.Microsecond),
		r.Q11, q12, r.Q13, r.Q14Dialogo, r.Q14Formato, q15,
		r.Q16.Estrutura, r.Q16.Vinculo, r.Q16.Carga, r.Q16.Fluxo, r.Q16.Sistematizacao,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "db.insert_response")
	}
	return id, nil
}

func (s *sqlStore) List(ctx context.Context) ([]model.SurveyResponse, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			id, data_envio, q11, q12, q13, q14_dialogo, q14_formato, q15,
			q16_estrutura, q16_vinculo, q16_carga, q16_fluxo, q16_sistematizacao
		FROM respostas
		ORDER BY data_envio DESC, id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "db.get_responses")
	}
	defer rows.Close()

	responses := []model.SurveyResponse{}
	for rows.Next() {
		r := model.SurveyResponse{}
		var q12, q15 sql.NullString
		err = rows.Scan(
			&r.ID, &r.DataEnvio, &r.Q11, &q12, &r.Q13, &r.Q14Dialogo, &r.Q14Formato, &q15,
			&r.Q16.Estrutura, &r.Q16.Vinculo, &r.Q16.Carga, &r.Q16.Fluxo, &r.Q16.Sistematizacao,
		)
		if err != nil {
			return nil, errors.Wrap(err, "db.get_responses.scan")
		}
		r.DataEnvio = r.DataEnvio.UTC()

		if r.Q12, err = decodeList(q12); err != nil {
			return nil, errors.Wrapf(err, "db.get_responses.parse_q12 (id %d)", r.ID)
		}
		if r.Q15, err = decodeList(q15); err != nil {
			return nil, errors.Wrapf(err, "db.get_responses.parse_q15 (id %d)", r.ID)
		}

		responses = append(responses, r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "db.get_responses.rows")
	}
	return responses, nil
}

func (s *sqlStore) Stats(ctx context.Context) (stats model.Stats, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM respostas`).Scan(&stats.Total)
	if err != nil {
		return stats, errors.Wrap(err, "db.get_stats.count")
	}

	var last time.Time
	err = s.db.QueryRowContext(ctx, `
		SELECT data_envio FROM respostas
		ORDER BY data_envio DESC, id DESC
		LIMIT 1`,
	).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return stats, nil
	case err != nil:
		return stats, errors.Wrap(err, "db.get_stats.last")
	}

	last = last.UTC()
	stats.UltimaResposta = &last
	return stats, nil
}

func (s *sqlStore) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM respostas`)
	return errors.Wrap(err, "db.delete_responses")
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func encodeList(labels []string) (string, error) {
	if labels == nil {
		labels = []string{}
	}
	b, err := json.Marshal(labels)
	return string(b), err
}

func decodeList(col sql.NullString) ([]string, error) {
	labels := []string{}
	if !col.Valid || col.String == "" {
		return labels, nil
	}
	if err := json.Unmarshal([]byte(col.String), &labels); err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []string{}
	}
	return labels, nil
}
