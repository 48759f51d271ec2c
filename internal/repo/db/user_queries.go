package db

const userColumns = `
	u.id,
	u.uuid,
	u.username,
	u.email,
	u.phone_number,
	u.first_name,
	u.last_name,
	u.password,
	u.type,
	u.is_active,
	u.is_verified,
	u.is_staff,
	u.created_at,
	u.updated_at
`

const userGetByUUIDQ = `SELECT` + userColumns + `FROM users u
WHERE u.uuid = $1
`

const userGetByEmailQ = `SELECT` + userColumns + `FROM users u
WHERE u.email = $1 OR u.username = $1
LIMIT 1
`

const userCreateQ = `
INSERT INTO users (username, email, phone_number, first_name, last_name, password, type, is_active, is_verified) 
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING uuid
`

const userUpdateQ = `
UPDATE users 
SET first_name = $1, 
    last_name = $2,
    phone_number = $3,
    updated_at = NOW()
WHERE uuid = $4
`

const userUpdatePasswordQ = `
UPDATE users
SET password = $1,
    updated_at = NOW()
WHERE id = $2
`

const userActivePlansQ = `
SELECT DISTINCT ON (s.user_id)
	s.user_id AS subscriber_id,
	p.id,
	p.uuid,
	p.name,
	p.description,
	p.monthly_price,
	p.yearly_price,
	p.currency,
	p.notification_channels,
	p.is_active,
	p.coming_soon,
	p.is_special,
	p.button_cta,
	p.ordering,
	p.created_by_id,
	p.created_at,
	p.updated_at
FROM subscriptions s
JOIN subscription_plans p ON p.id = s.plan_id
WHERE s.is_active = TRUE AND s.user_id = ANY($1)
ORDER BY s.user_id, s.created_at DESC
`

const profileGetQ = `
SELECT 
	id, 
	uuid, 
	user_id, 
	has_trading_experience, 
	ref_id, 
	amount_range_to_trade_with, 
	created_at, 
	updated_at
FROM profiles
WHERE user_id = $1
`

const profileUpsertQ = `
INSERT INTO profiles (user_id, has_trading_experience, ref_id, amount_range_to_trade_with)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE
SET has_trading_experience = EXCLUDED.has_trading_experience,
    ref_id = EXCLUDED.ref_id,
    amount_range_to_trade_with = EXCLUDED.amount_range_to_trade_with,
    updated_at = NOW()
RETURNING id, uuid, user_id, has_trading_experience, ref_id, amount_range_to_trade_with, created_at, updated_at
`
