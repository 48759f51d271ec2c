package db

const screeningCreateQ = `
INSERT INTO account_screening_requests (
	user_id, name, email, phone_number, schedule_date, schedule_time, country,
	trading_capital_amount, has_trading_experience, previously_used_forex_broker
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, uuid, is_approved, created_at, updated_at
`

const screeningDeletePendingQ = `
DELETE FROM account_screening_requests
WHERE user_id = $1 AND is_approved = FALSE AND id <> $2
`

const screeningApproveQ = `
UPDATE account_screening_requests
SET is_approved = TRUE,
    updated_at = NOW()
WHERE uuid = $1
RETURNING id, user_id
`

const screeningStatusQ = `
SELECT
	COUNT(*) > 0 AS requested,
	COALESCE(BOOL_OR(is_approved), FALSE) AS approved
FROM account_screening_requests
WHERE user_id = $1
`

const upgradeCreateQ = `
INSERT INTO account_upgrade_payment_requests (user_id, plan_id)
VALUES ($1, $2)
RETURNING id, uuid, created_at, updated_at
`
