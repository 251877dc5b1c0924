package services

import (
	"sort"
	"strings"

	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecommendationService ranks partner candidates by mutual skill overlap.
// It is a pure read; results are advisory and never cached.
type RecommendationService struct {
	db         *gorm.DB
	moderation *ModerationService
}

func NewRecommendationService(db *gorm.DB, moderation *ModerationService) *RecommendationService {
	return &RecommendationService{db: db, moderation: moderation}
}

// RecommendPartners scores every candidate who offers at least one skill the
// user wants.
//
//	overlap    = distinct candidate offers among the user's wants
//	mutual     = distinct candidate wants among the user's offers
//	final      = overlap + mutual
//
// Ordering: final desc, overlap desc, username asc. q filters the user's own
// want-skills by name substring; mode filters candidates by preferred mode;
// limit truncates after sorting (0 = no limit).
func (s *RecommendationService) RecommendPartners(userID uuid.UUID, q, mode string, limit int) ([]dto.Recommendation, error) {
	wantIDs, err := s.wantSkillIDs(userID, q)
	if err != nil {
		return nil, err
	}
	if len(wantIDs) == 0 {
		return []dto.Recommendation{}, nil
	}

	excluded := []uuid.UUID{userID}
	blockedIDs, err := s.moderation.BlockedUserIDs(userID)
	if err != nil {
		return nil, err
	}
	excluded = append(excluded, blockedIDs...)

	// Candidate offer rows carry both the overlap count and the skills shown
	// alongside each recommendation.
	var offerRows []models.UserSkill
	err = s.db.Preload("Skill").
		Where("type = ? AND skill_id IN ?", models.SkillTypeOffer, wantIDs).
		Where("user_id NOT IN ?", excluded).
		Find(&offerRows).Error
	if err != nil {
		return nil, err
	}
	if len(offerRows) == 0 {
		return []dto.Recommendation{}, nil
	}

	overlaps := make(map[uuid.UUID]map[uuid.UUID]struct{})
	offersByUser := make(map[uuid.UUID][]models.UserSkill)
	for _, row := range offerRows {
		if overlaps[row.UserID] == nil {
			overlaps[row.UserID] = make(map[uuid.UUID]struct{})
		}
		if _, seen := overlaps[row.UserID][row.SkillID]; !seen {
			overlaps[row.UserID][row.SkillID] = struct{}{}
			offersByUser[row.UserID] = append(offersByUser[row.UserID], row)
		}
	}

	candidateIDs := make([]uuid.UUID, 0, len(overlaps))
	for id := range overlaps {
		candidateIDs = append(candidateIDs, id)
	}

	mutuals, err := s.mutualCounts(userID, candidateIDs)
	if err != nil {
		return nil, err
	}

	users, profiles, err := s.candidateUsers(candidateIDs, mode)
	if err != nil {
		return nil, err
	}

	recommendations := make([]dto.Recommendation, 0, len(users))
	for _, user := range users {
		overlap := len(overlaps[user.ID])
		if overlap == 0 {
			continue
		}
		mutual := mutuals[user.ID]
		recommendations = append(recommendations, dto.Recommendation{
			UserID:         user.ID,
			Username:       user.Username,
			Profile:        profiles[user.ID],
			Overlap:        overlap,
			MutualOverlap:  mutual,
			FinalScore:     overlap + mutual,
			MatchingOffers: offersByUser[user.ID],
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		a, b := recommendations[i], recommendations[j]
		if a.FinalScore != b.FinalScore {
			return a.FinalScore > b.FinalScore
		}
		if a.Overlap != b.Overlap {
			return a.Overlap > b.Overlap
		}
		return a.Username < b.Username
	})

	if limit > 0 && len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations, nil
}

// wantSkillIDs returns the distinct skills the user wants, optionally
// filtered by name substring.
func (s *RecommendationService) wantSkillIDs(userID uuid.UUID, q string) ([]uuid.UUID, error) {
	query := s.db.Model(&models.UserSkill{}).
		Joins("JOIN skills ON skills.id = user_skills.skill_id").
		Where("user_skills.user_id = ? AND user_skills.type = ?", userID, models.SkillTypeWant)
	if q = strings.TrimSpace(q); q != "" {
		query = query.Where("LOWER(skills.name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var ids []uuid.UUID
	if err := query.Distinct().Pluck("user_skills.skill_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// mutualCounts counts, per candidate, their distinct wants among the user's
// offered skills (the reciprocal interest signal).
func (s *RecommendationService) mutualCounts(userID uuid.UUID, candidateIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(candidateIDs))
	if len(candidateIDs) == 0 {
		return counts, nil
	}

	var offerIDs []uuid.UUID
	err := s.db.Model(&models.UserSkill{}).
		Where("user_id = ? AND type = ?", userID, models.SkillTypeOffer).
		Distinct().Pluck("skill_id", &offerIDs).Error
	if err != nil {
		return nil, err
	}
	if len(offerIDs) == 0 {
		return counts, nil
	}

	type row struct {
		UserID uuid.UUID
		N      int
	}
	var rows []row
	err = s.db.Model(&models.UserSkill{}).
		Select("user_id, COUNT(DISTINCT skill_id) AS n").
		Where("user_id IN ? AND type = ? AND skill_id IN ?", candidateIDs, models.SkillTypeWant, offerIDs).
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.UserID] = r.N
	}
	return counts, nil
}

// candidateUsers loads the candidates' users and profiles, applying the
// optional preferred-mode filter.
func (s *RecommendationService) candidateUsers(candidateIDs []uuid.UUID, mode string) ([]models.User, map[uuid.UUID]models.Profile, error) {
	var users []models.User
	if err := s.db.Where("id IN ?", candidateIDs).Find(&users).Error; err != nil {
		return nil, nil, err
	}

	var profileRows []models.Profile
	if err := s.db.Where("user_id IN ?", candidateIDs).Find(&profileRows).Error; err != nil {
		return nil, nil, err
	}
	profiles := make(map[uuid.UUID]models.Profile, len(profileRows))
	for _, p := range profileRows {
		profiles[p.UserID] = p
	}

	if !models.ValidMode(mode) {
		return users, profiles, nil
	}
	filtered := users[:0]
	for _, u := range users {
		if profiles[u.ID].PreferredMode == mode {
			filtered = append(filtered, u)
		}
	}
	return filtered, profiles, nil
}

// ExploreUsers lists the user directory minus self and blocked relations,
// optionally filtered by skill name substring and offer/want direction.
func (s *RecommendationService) ExploreUsers(userID uuid.UUID, skillQuery, skillType string, limit, offset int) ([]dto.ExploreUser, int64, error) {
	excluded := []uuid.UUID{userID}
	blockedIDs, err := s.moderation.BlockedUserIDs(userID)
	if err != nil {
		return nil, 0, err
	}
	excluded = append(excluded, blockedIDs...)

	query := s.db.Model(&models.User{}).Where("users.id NOT IN ?", excluded)

	skillQuery = strings.TrimSpace(skillQuery)
	joined := skillQuery != "" || models.ValidSkillType(skillType)
	if joined {
		query = query.Joins("JOIN user_skills ON user_skills.user_id = users.id").
			Joins("JOIN skills ON skills.id = user_skills.skill_id")
		if skillQuery != "" {
			query = query.Where("LOWER(skills.name) LIKE ?", "%"+strings.ToLower(skillQuery)+"%")
		}
		if models.ValidSkillType(skillType) {
			query = query.Where("user_skills.type = ?", skillType)
		}
	}

	// Count and row fetch run on separate clones; the join can multiply rows
	// per user, so both collapse on the primary key.
	countQuery := query.Session(&gorm.Session{})
	if joined {
		countQuery = countQuery.Distinct("users.id")
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rowQuery := query.Session(&gorm.Session{})
	if joined {
		rowQuery = rowQuery.Group("users.id")
	}
	var users []models.User
	if err := rowQuery.Order("users.username ASC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	var profileRows []models.Profile
	if len(ids) > 0 {
		if err := s.db.Where("user_id IN ?", ids).Find(&profileRows).Error; err != nil {
			return nil, 0, err
		}
	}
	profiles := make(map[uuid.UUID]models.Profile, len(profileRows))
	for _, p := range profileRows {
		profiles[p.UserID] = p
	}

	result := make([]dto.ExploreUser, 0, len(users))
	for _, u := range users {
		result = append(result, dto.ExploreUser{
			UserID:   u.ID,
			Username: u.Username,
			Profile:  profiles[u.ID],
		})
	}
	return result, total, nil
}
