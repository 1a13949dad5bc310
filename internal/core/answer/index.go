package answer

// UserAnswers maps questionId to the current answer text
type UserAnswers map[int64]string

// ByUser groups the current answers as userId -> questionId -> answer
func (rs Resolved) ByUser() map[int64]UserAnswers {
	out := make(map[int64]UserAnswers)
	for k, r := range rs {
		ua, ok := out[k.UserID]
		if !ok {
			ua = make(UserAnswers)
			out[k.UserID] = ua
		}
		ua[k.QuestionID] = r.Answer
	}
	return out
}

// ForUser returns the current answers of one user, empty when unknown
func (rs Resolved) ForUser(userID int64) UserAnswers {
	out := make(UserAnswers)
	for k, r := range rs {
		if k.UserID == userID {
			out[k.QuestionID] = r.Answer
		}
	}
	return out
}

// ByAnswer groups the current records by answer text
// Callers scope the set to one question first; each list is ordered by user
func (rs Resolved) ByAnswer() map[string][]Record {
	out := make(map[string][]Record)
	for _, r := range rs.Records() {
		out[r.Answer] = append(out[r.Answer], r)
	}
	return out
}
