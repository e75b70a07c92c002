package services

import (
	"errors"

	"littlelemon/entity"
	"littlelemon/repository"

	"gorm.io/gorm"
)

// GroupService manages Manager and Delivery Crew membership. Privilege
// checks happen in the route gate; here the target user is resolved by
// username.
type GroupService struct {
	GroupRepo *repository.GroupRepository
	UserRepo  *repository.UserRepository
}

func NewGroupService(gr *repository.GroupRepository, ur *repository.UserRepository) *GroupService {
	return &GroupService{GroupRepo: gr, UserRepo: ur}
}

func (s *GroupService) Members(groupName string) ([]entity.User, error) {
	return s.GroupRepo.Members(groupName)
}

func (s *GroupService) Add(groupName, username string) error {
	user, group, err := s.resolve(groupName, username)
	if err != nil {
		return err
	}
	return s.GroupRepo.AddMember(user, group)
}

func (s *GroupService) Remove(groupName, username string) error {
	user, group, err := s.resolve(groupName, username)
	if err != nil {
		return err
	}
	return s.GroupRepo.RemoveMember(user, group)
}

func (s *GroupService) resolve(groupName, username string) (*entity.User, *entity.Group, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	group, err := s.GroupRepo.FindByName(groupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return user, group, nil
}
