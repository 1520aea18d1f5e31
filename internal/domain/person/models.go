package person

// Models lists every persisted type in migration order.
func Models() []interface{} {
	return []interface{}{
		&Person{},
		&SocialMediaAccount{},
		&SocialSkill{},
		&PersonSocialMediaAccount{},
	}
}
