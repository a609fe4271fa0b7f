package classify

// DefaultConfig 返回线上使用的关键词表
func DefaultConfig() *Config {
	return &Config{
		ConsultationKeywords: []string{
			"consultation",
			"consult",
			"quote",
			"pricing",
			"price",
			"cost",
			"how much",
			"schedule",
			"appointment",
			"book",
			"booking",
			"contact",
			"reach out",
			"interested in",
			"sign up",
			"get started",
			"speak to someone",
			"talk to someone",
			"call",
		},
		DomainKeywords: []string{
			// 项目与疗程
			"botox",
			"filler",
			"injectable",
			"laser",
			"hydrafacial",
			"facial",
			"chemical peel",
			"peel",
			"microneedling",
			"dermaplaning",
			"body contouring",
			"coolsculpting",
			"prp",
			"rejuvenation",
			"anti-aging",
			"wrinkle",
			"fine lines",
			"acne",
			"pigmentation",
			"hair removal",
			"skin",
			"skincare",
			"treatment",
			"membership",
			"med spa",
			"medspa",
			"spa",
			"aesthetician",
			"radiance",
			// 站内导航
			"services",
			"gallery",
			"testimonials",
			"about us",
			"faq",
			"hours",
		},
		MetaRequestWords: []string{
			"list",
			"summarize",
			"summary",
			"bullet",
			"outline",
		},
		GreetingPattern: `^(hi|hello|hey|good (morning|afternoon|evening))`,
		RecentUserTurns: 3,
	}
}
