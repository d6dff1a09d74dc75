package handlers

import (
	"time"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

type authorDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type recipeDTO struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	ImageURL     string     `json:"image_url,omitempty"`
	Difficulty   string     `json:"difficulty"`
	Category     string     `json:"category"`
	IsFeatured   bool       `json:"is_featured"`
	AuthorID     string     `json:"author_id"`
	Author       *authorDTO `json:"author,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toRecipeDTO(r *entity.Recipe) recipeDTO {
	dto := recipeDTO{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.InstructionSteps(),
		ImageURL:     r.ImageURL,
		Difficulty:   string(r.Difficulty),
		Category:     r.Category,
		IsFeatured:   r.IsFeatured,
		AuthorID:     r.AuthorID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Author != nil {
		dto.Author = &authorDTO{ID: r.Author.ID, Name: r.Author.Name, Email: r.Author.Email, ImageURL: r.Author.ImageURL}
	}
	return dto
}

func toRecipeDTOs(recipes []*entity.Recipe) []recipeDTO {
	out := make([]recipeDTO, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeDTO(r))
	}
	return out
}

type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserDTO(u *entity.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		ImageURL:  u.ImageURL,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type categoryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toCategoryDTO(c *entity.Category) categoryDTO {
	return categoryDTO{ID: c.ID, Name: c.Name, Icon: c.Icon, CreatedAt: c.CreatedAt}
}

type moderationRowDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	AuthorName  string    `json:"author_name,omitempty"`
	AuthorEmail string    `json:"author_email"`
}

func toModerationRowDTO(m *repository.ModerationRow) moderationRowDTO {
	return moderationRowDTO{
		ID:          m.ID,
		Title:       m.Title,
		Category:    m.Category,
		IsFeatured:  m.IsFeatured,
		CreatedAt:   m.CreatedAt,
		AuthorName:  m.AuthorName,
		AuthorEmail: m.AuthorEmail,
	}
}

type settingsDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	MaintenanceMode bool      `json:"maintenance_mode"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toSettingsDTO(s *entity.SiteSettings) settingsDTO {
	return settingsDTO{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		ContactEmail:    s.ContactEmail,
		MaintenanceMode: s.MaintenanceMode,
		UpdatedAt:       s.UpdatedAt,
	}
}

type auditEntryDTO struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	AdminName string    `json:"admin_name"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toAuditEntryDTO(e *entity.AuditLogEntry) auditEntryDTO {
	return auditEntryDTO{ID: e.ID, Action: e.Action, AdminName: e.AdminName, Details: e.Details, CreatedAt: e.CreatedAt}
}
