package postgres

const insertUserSQL = `
INSERT INTO users (id, name, email, password_hash)
VALUES ($1,$2,$3,$4)
RETURNING id, name, email, password_hash, created_at
`

const getUserByEmailSQL = `
SELECT id, name, email, password_hash, created_at
FROM users
WHERE email = $1
LIMIT 1
`

const insertInvoiceSQL = `
INSERT INTO invoices (id, customer_id, amount_cents, status, date, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`

const getInvoiceSQL = `
SELECT id, customer_id, amount_cents, status, date, created_at, updated_at
FROM invoices WHERE id = $1
`

const updateInvoiceSQL = `
UPDATE invoices SET
  customer_id=$2, amount_cents=$3, status=$4, updated_at=$5
WHERE id=$1
`

const deleteInvoiceSQL = `
DELETE FROM invoices WHERE id = $1
`

const countInvoicesSQL = `SELECT COUNT(*) FROM invoices`

const listInvoicesSQL = `
SELECT id, customer_id, amount_cents, status, date, created_at, updated_at
FROM invoices
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`
