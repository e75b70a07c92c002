package repository

import (
	"littlelemon/entity"

	"gorm.io/gorm"
)

type GroupRepository struct{ DB *gorm.DB }

func NewGroupRepository(db *gorm.DB) *GroupRepository { return &GroupRepository{DB: db} }

func (r *GroupRepository) FindByName(name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// Members returns the users that belong to the named group.
func (r *GroupRepository) Members(name string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("groups.name = ?", name).
		Find(&users).Error
	return users, err
}

func (r *GroupRepository) AddMember(user *entity.User, group *entity.Group) error {
	return r.DB.Model(user).Association("Groups").Append(group)
}

func (r *GroupRepository) RemoveMember(user *entity.User, group *entity.Group) error {
	return r.DB.Model(user).Association("Groups").Delete(group)
}
