package algorithm

import "github.com/verte-zerg/orsprogress/internal/model"

var builtinTables = []Coefficients{
	{
		AgeGroup: model.Adolescent, Term: ShortTerm,
		ClinicalCutoff: 28.0, ReliableChangeIndex: 6.0, StandardDeviation: 7.27,
		MinMeetings: 1, MaxMeetings: 8, FlattenMeeting: 6,
		InterceptMean: 20.1, LinearMean: 4.098486, QuadraticMean: -0.657675, CubicMean: 0.035589,
		Intake: 0.9, LinearByIntake: -0.098432, QuadraticByIntake: -0.002789, CubicByIntake: 0.001221,
	},
	{
		AgeGroup: model.Adolescent, Term: LongTerm,
		ClinicalCutoff: 28.0, ReliableChangeIndex: 6.0, StandardDeviation: 7.27,
		MinMeetings: 9, MaxMeetings: 18, FlattenMeeting: 10,
		InterceptMean: 20.0, LinearMean: 2.3126087, QuadraticMean: -0.1927908, CubicMean: 0.005144,
		Intake: 0.9, LinearByIntake: -0.1407609, QuadraticByIntake: 0.0155978, CubicByIntake: -0.0005707,
	},
	{
		AgeGroup: model.Adult, Term: ShortTerm,
		ClinicalCutoff: 25.0, ReliableChangeIndex: 5.0, StandardDeviation: 6.63,
		MinMeetings: 1, MaxMeetings: 8, FlattenMeeting: 6,
		InterceptMean: 19.6, LinearMean: 3.965333, QuadraticMean: -0.707611, CubicMean: 0.042278,
		Intake: 0.92, LinearByIntake: -0.0992, QuadraticByIntake: -0.001933, CubicByIntake: 0.001133,
	},
	{
		AgeGroup: model.Adult, Term: LongTerm,
		ClinicalCutoff: 25.0, ReliableChangeIndex: 5.0, StandardDeviation: 6.63,
		MinMeetings: 9, MaxMeetings: 18, FlattenMeeting: 10,
		InterceptMean: 19.8, LinearMean: 1.701087, QuadraticMean: -0.097283, CubicMean: 0.000815,
		Intake: 0.91, LinearByIntake: -0.113315, QuadraticByIntake: 0.010149, CubicByIntake: -0.000299,
	},
	{
		AgeGroup: model.Child, Term: ShortTerm,
		ClinicalCutoff: 32.0, ReliableChangeIndex: 6.0, StandardDeviation: 7.04,
		MinMeetings: 1, MaxMeetings: 8, FlattenMeeting: 6,
		InterceptMean: 20.4, LinearMean: 4.271333, QuadraticMean: -0.598778, CubicMean: 0.027444,
		Intake: 0.88, LinearByIntake: -0.098133, QuadraticByIntake: -0.003122, CubicByIntake: 0.001256,
	},
	{
		AgeGroup: model.Child, Term: LongTerm,
		ClinicalCutoff: 32.0, ReliableChangeIndex: 6.0, StandardDeviation: 7.04,
		MinMeetings: 9, MaxMeetings: 18, FlattenMeeting: 10,
		InterceptMean: 20.2, LinearMean: 2.366848, QuadraticMean: -0.167255, CubicMean: 0.003261,
		Intake: 0.89, LinearByIntake: -0.125543, QuadraticByIntake: 0.012391, CubicByIntake: -0.000408,
	},
}

var defaultProvider = mustDefault()

// Default returns the provider backed by the built-in 2015 tables.
func Default() *TableProvider {
	return defaultProvider
}

func mustDefault() *TableProvider {
	tables := make([]Coefficients, len(builtinTables))
	for i, c := range builtinTables {
		c.Version = tableVersion(c.AgeGroup, c.Term)
		tables[i] = c
	}
	p, err := NewTableProvider(tables)
	if err != nil {
		panic(err)
	}
	return p
}
