package childRepository

const (
	queryCreateChild = `
INSERT INTO children (id, parent_id, name, birth_date, sex, jaundice_at_birth, family_asd_history, created_at, updated_at)
VALUES (:id, :parent_id, :name, :birth_date, :sex, :jaundice_at_birth, :family_asd_history, :created_at, :updated_at)`

	queryGetChildByID = `
SELECT id, parent_id, name, birth_date, sex, jaundice_at_birth, family_asd_history, photo_url, created_at, updated_at
FROM children
    WHERE id = :id`

	queryGetChildrenByParentID = `
SELECT id, parent_id, name, birth_date, sex, jaundice_at_birth, family_asd_history, photo_url, created_at, updated_at
FROM children
    WHERE parent_id = :parent_id
ORDER BY created_at DESC`

	queryUpdateChild = `
UPDATE children
SET name = :name,
    birth_date = :birth_date,
    sex = :sex,
    jaundice_at_birth = :jaundice_at_birth,
    family_asd_history = :family_asd_history,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateChildPhoto = `
UPDATE children
SET photo_url = :photo_url,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteChild = `
DELETE FROM children
WHERE id = :id`
)
