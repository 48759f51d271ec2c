package db

const videoColumns = `
	v.id,
	v.uuid,
	v.title,
	v.description,
	v.video_link,
	v.thumbnail,
	v.created_at,
	v.updated_at
`

const videoListQ = `SELECT` + videoColumns + `FROM academy_videos v
ORDER BY v.created_at DESC
`

const videoGetQ = `SELECT` + videoColumns + `FROM academy_videos v
WHERE v.uuid = $1
`

const videoCreateQ = `
INSERT INTO academy_videos (title, description, video_link, thumbnail)
VALUES ($1, $2, $3, $4)
RETURNING id, uuid, created_at, updated_at
`

const webinarColumns = `
	w.id,
	w.uuid,
	w.name,
	w.description,
	w.image,
	w.date::text AS date,
	to_char(w.time, 'HH24:MI') AS time,
	w.location,
	w.created_at,
	w.updated_at
`

const webinarListQ = `SELECT` + webinarColumns + `FROM webinars w
ORDER BY w.date DESC, w.time DESC
`

const webinarGetQ = `SELECT` + webinarColumns + `FROM webinars w
WHERE w.uuid = $1
`

const webinarCreateQ = `
INSERT INTO webinars (name, description, image, date, time, location)
VALUES ($1, $2, $3, $4::date, $5::time, $6)
RETURNING id, uuid, created_at, updated_at
`
