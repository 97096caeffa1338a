package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, email, name, password, phone_number, auth_provider, is_verified, created_at, updated_at)
VALUES (:id, :email, :name, :password, :phone_number, :auth_provider, :is_verified, :created_at, :updated_at)`

	queryGetByID = `
SELECT id, email, name, password, phone_number, profile_photo_url, auth_provider, is_verified, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, email, name, password, phone_number, profile_photo_url, auth_provider, is_verified, created_at, updated_at
FROM users
    WHERE email = :email`

	queryUpdateProfile = `
UPDATE users
SET name = :name,
    phone_number = :phone_number,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateVerification = `
UPDATE users
SET is_verified = :is_verified, updated_at = :updated_at
WHERE email = :email`

	queryUpdateProfilePhoto = `
UPDATE users
SET profile_photo_url = :profile_photo_url,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteUser = `
DELETE FROM users
WHERE id = :id`
)
