package db

const codeCreateQ = `
INSERT INTO verification_codes (code, email)
VALUES ($1, $2)
`

const codeListByEmailQ = `
SELECT id, code, email, used, created_at
FROM verification_codes
WHERE email = $1
ORDER BY created_at DESC
`

const codeMarkUsedQ = `
UPDATE verification_codes
SET used = TRUE
WHERE id = $1 AND used = FALSE
`

const codeDeleteSiblingsQ = `
DELETE FROM verification_codes
WHERE email = $1 AND id <> $2
`

const userMarkVerifiedQ = `
UPDATE users
SET is_verified = TRUE,
    updated_at = NOW()
WHERE email = $1
RETURNING uuid
`

const resetTokenCreateQ = `
INSERT INTO password_reset_tokens (user_id, key, ip_address, user_agent)
VALUES ($1, $2, $3, $4)
`

const resetTokenGetQ = `
SELECT id, user_id, key, ip_address, user_agent, created_at
FROM password_reset_tokens
WHERE key = $1
`

const resetTokenDeleteByUserQ = `
DELETE FROM password_reset_tokens
WHERE user_id = $1
`
