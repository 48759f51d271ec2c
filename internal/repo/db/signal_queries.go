package db

const signalColumns = `
	s.id,
	s.uuid,
	s.entry,
	s.take_profit,
	s.stop_loss,
	s.term,
	s.action,
	s.pair_base,
	s.pair_quote,
	s.description,
	s.targets,
	s.is_active,
	s.author_id,
	u.uuid AS "author.uuid",
	u.username AS "author.username",
	u.first_name AS "author.first_name",
	u.last_name AS "author.last_name",
	s.created_at,
	s.updated_at
`

const signalCountActiveQ = `
SELECT COUNT(*)
FROM signals s
WHERE s.is_active = TRUE
`

const signalListActiveQ = `SELECT` + signalColumns + `FROM signals s
JOIN users u ON u.id = s.author_id
WHERE s.is_active = TRUE
ORDER BY s.updated_at DESC
LIMIT $1 OFFSET $2
`

const signalGetActiveQ = `SELECT` + signalColumns + `FROM signals s
JOIN users u ON u.id = s.author_id
WHERE s.uuid = $1 AND s.is_active = TRUE
`

const signalCreateQ = `
INSERT INTO signals (entry, take_profit, stop_loss, term, action, pair_base, pair_quote, description, targets, is_active, author_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, uuid, created_at, updated_at
`

const signalDeactivateQ = `
UPDATE signals
SET is_active = FALSE,
    updated_at = NOW()
WHERE uuid = $1
`
