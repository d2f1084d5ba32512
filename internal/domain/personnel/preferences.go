package personnel

import (
	"sync"
)

// SkillPreferences holds the recruit bonuses applied before experience rolls.
// All bonuses default to zero.
type SkillPreferences struct {
	mu                  sync.RWMutex
	overallRecruitBonus int
	recruitBonuses      map[Role]int
}

// NewSkillPreferences creates preferences with every bonus at zero
func NewSkillPreferences() *SkillPreferences {
	return &SkillPreferences{
		recruitBonuses: make(map[Role]int),
	}
}

// OverallRecruitBonus is added to every recruit's experience roll
func (p *SkillPreferences) OverallRecruitBonus() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.overallRecruitBonus
}

// SetOverallRecruitBonus sets the bonus added to every recruit
func (p *SkillPreferences) SetOverallRecruitBonus(bonus int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overallRecruitBonus = bonus
}

// RecruitBonus is added to experience rolls for recruits whose primary role is role
func (p *SkillPreferences) RecruitBonus(role Role) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.recruitBonuses[role]
}

// SetRecruitBonus sets the bonus for a single role
func (p *SkillPreferences) SetRecruitBonus(role Role, bonus int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.recruitBonuses == nil {
		p.recruitBonuses = make(map[Role]int)
	}
	p.recruitBonuses[role] = bonus
}

// SkillPreferencesData is the serialized form of SkillPreferences
type SkillPreferencesData struct {
	OverallRecruitBonus int          `yaml:"overall_recruit_bonus" json:"overall_recruit_bonus"`
	RecruitBonuses      map[Role]int `yaml:"recruit_bonuses" json:"recruit_bonuses"`
}

// SkillPreferencesFromData builds preferences from their serialized form.
// Unknown roles are rejected.
func SkillPreferencesFromData(data *SkillPreferencesData) (*SkillPreferences, error) {
	prefs := NewSkillPreferences()
	if data == nil {
		return prefs, nil
	}

	prefs.overallRecruitBonus = data.OverallRecruitBonus
	for role, bonus := range data.RecruitBonuses {
		if _, err := ParseRole(string(role)); err != nil {
			return nil, err
		}
		prefs.recruitBonuses[role] = bonus
	}
	return prefs, nil
}

// Data returns a serializable snapshot
func (p *SkillPreferences) Data() *SkillPreferencesData {
	p.mu.RLock()
	defer p.mu.RUnlock()

	bonuses := make(map[Role]int, len(p.recruitBonuses))
	for role, bonus := range p.recruitBonuses {
		bonuses[role] = bonus
	}
	return &SkillPreferencesData{
		OverallRecruitBonus: p.overallRecruitBonus,
		RecruitBonuses:      bonuses,
	}
}
