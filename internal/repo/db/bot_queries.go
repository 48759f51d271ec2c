package db

const botColumns = `
	b.id,
	b.uuid,
	b.name,
	b.min_investment_amount,
	b.max_investment_amount,
	b.performance_fee,
	b.overall,
	b.is_active,
	b.is_top_performing,
	b.created_at,
	b.updated_at
`

const botListActiveQ = `SELECT` + botColumns + `FROM bots b
WHERE b.is_active = TRUE
ORDER BY b.created_at DESC
`

const botListTopPerformingQ = `SELECT` + botColumns + `FROM bots b
WHERE b.is_active = TRUE AND b.is_top_performing = TRUE
ORDER BY b.created_at DESC
`

const botGetActiveQ = `SELECT` + botColumns + `FROM bots b
WHERE b.uuid = $1 AND b.is_active = TRUE
`

const botCreateQ = `
INSERT INTO bots (name, min_investment_amount, max_investment_amount, performance_fee, overall, is_active, is_top_performing)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, uuid, created_at, updated_at
`

const botlabColumns = `
	b.id,
	b.uuid,
	b.name,
	b.name_of_broker,
	b.server_name,
	b.investor_login,
	b.investor_password,
	b.terminal,
	COALESCE(b.test_commencement_date::text, '') AS test_commencement_date,
	b.is_delisted,
	b.created_at,
	b.updated_at
`

const botlabListQ = `SELECT` + botlabColumns + `FROM botlab_bots b
WHERE b.is_delisted = FALSE
ORDER BY b.created_at DESC
`

const botlabGetQ = `SELECT` + botlabColumns + `FROM botlab_bots b
WHERE b.uuid = $1 AND b.is_delisted = FALSE
`

const botlabCreateQ = `
INSERT INTO botlab_bots (name, name_of_broker, server_name, investor_login, investor_password, terminal, test_commencement_date)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::date)
RETURNING id, uuid, is_delisted, created_at, updated_at
`

const guideGetByBotQ = `
SELECT
	g.id,
	g.uuid,
	g.bot_id,
	b.uuid AS bot_uuid,
	g.description,
	g.created_at,
	g.updated_at
FROM copy_trading_guides g
JOIN bots b ON b.id = g.bot_id
WHERE b.uuid = $1
`

const guideCreateQ = `
INSERT INTO copy_trading_guides (bot_id, description)
VALUES ($1, $2)
RETURNING id, uuid, created_at, updated_at
`
