package user

import (
	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
	"github.com/biz365/admin-api/internal/response"
	"github.com/biz365/admin-api/internal/schema"
	"github.com/biz365/admin-api/internal/utils"
	"github.com/gofiber/fiber/v2"
)

func ListUsersHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	q := database.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR phone LIKE ?", like, like, like, like)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if from, ok := database.ParseTime(c.Query("date_from")); ok {
		q = q.Where("created_at >= ?", from)
	}
	if to, ok := database.ParseTime(c.Query("date_to")); ok {
		q = q.Where("created_at <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count users")
	}

	var users []models.User
	err := q.Order(database.OrderClause(c.Query("sort_by"), c.Query("sort_order"),
		"email", "first_name", "last_name", "role", "status", "last_login", "created_at", "updated_at")).
		Scopes(database.Paginate(page, limit)).
		Find(&users).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch users")
	}

	return response.SuccessWithMeta(c, users, response.CalculateMeta(page, limit, total), "Users retrieved successfully")
}

func GetUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	return response.Success(c, user, "User retrieved successfully")
}

func CreateUserHandler(c *fiber.Ctx) error {
	var body struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
		Password  string `json:"password"`
		Role      string `json:"role"`
		Status    string `json:"status"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if problems := schema.Validate("users", fiber.Map{
		"email":      body.Email,
		"first_name": body.FirstName,
		"last_name":  body.LastName,
		"phone":      body.Phone,
		"role":       body.Role,
		"status":     body.Status,
	}); len(problems) > 0 {
		return response.ValidationError(c, problems)
	}

	var existing models.User
	if err := database.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
		return response.Conflict(c, "User with this email already exists")
	}

	user := models.User{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Role:      body.Role,
		Status:    body.Status,
	}

	if body.Password != "" {
		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			return response.InternalError(c, "Failed to hash password")
		}
		user.Password = hash
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return response.InternalError(c, "Failed to create user")
	}

	return response.Created(c, user, "User created successfully")
}

func UpdateUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	merged := fiber.Map{
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"phone":      user.Phone,
		"role":       user.Role,
		"status":     user.Status,
	}
	updates := map[string]any{}
	for _, key := range []string{"email", "first_name", "last_name", "phone", "role", "status"} {
		if v, ok := body[key]; ok {
			merged[key] = v
			updates[key] = v
		}
	}

	if problems := schema.Validate("users", merged); len(problems) > 0 {
		return response.ValidationError(c, problems)
	}

	if password, ok := body["password"].(string); ok && password != "" {
		hash, err := utils.HashPassword(password)
		if err != nil {
			return response.InternalError(c, "Failed to hash password")
		}
		updates["password"] = hash
	}

	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		return response.InternalError(c, "Failed to update user")
	}

	database.DB.First(&user, id)
	return response.Success(c, user, "User updated successfully")
}

func DeleteUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		return response.InternalError(c, "Failed to delete user")
	}

	return response.Success(c, nil, "User deleted successfully")
}
