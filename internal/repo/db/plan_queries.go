package db

const planColumns = `
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
`

const planListVisibleQ = `SELECT` + planColumns + `FROM subscription_plans p
WHERE p.is_active = TRUE OR p.coming_soon = TRUE
ORDER BY p.ordering, p.created_at
`

const planGetQ = `SELECT` + planColumns + `FROM subscription_plans p
WHERE p.uuid = $1
`

const planCreateQ = `
INSERT INTO subscription_plans (
	name, description, monthly_price, yearly_price, currency, notification_channels,
	is_active, coming_soon, is_special, button_cta, ordering, created_by_id
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, uuid, created_at, updated_at
`

const subscriptionActivePlanIDsQ = `
SELECT DISTINCT s.plan_id
FROM subscriptions s
WHERE s.user_id = $1 AND s.is_active = TRUE
`

const subscriptionHasActiveQ = `
SELECT EXISTS (
	SELECT 1 FROM subscriptions s
	WHERE s.user_id = $1 AND s.is_active = TRUE
)
`

const subscriptionActiveSubscribersQ = `SELECT` + userColumns + `,
	p.notification_channels
FROM subscriptions s
JOIN users u ON u.id = s.user_id
JOIN subscription_plans p ON p.id = s.plan_id
WHERE s.is_active = TRUE AND u.is_active = TRUE
ORDER BY u.id
`

const subscriptionDeactivateForUserQ = `
UPDATE subscriptions
SET is_active = FALSE,
    updated_at = NOW()
WHERE user_id = $1 AND is_active = TRUE
`

const subscriptionCreateQ = `
INSERT INTO subscriptions (user_id, plan_id, start_timestamp, end_timestamp, is_active)
VALUES ($1, $2, $3, $4, TRUE)
RETURNING id, uuid, is_active, created_at, updated_at
`

const dashboardStatsQ = `
SELECT
	(SELECT COUNT(*) FROM users) AS total_users,
	(SELECT COUNT(*) FROM subscriptions WHERE is_active = TRUE) AS active_subscriptions,
	(SELECT COUNT(*) FROM signals) AS total_signals,
	(SELECT COUNT(*) FROM signals WHERE is_active = TRUE) AS active_signals
`
