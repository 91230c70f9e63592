package types

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("flag", func() {
	DescribeTable("is in",
		func(f, g Flag) {
			Expect(f.IsIn(g)).To(BeTrue())
		},
		Entry("student is in student", AllowStudent, AllowStudent),
		Entry("student is in min student", AllowStudent, AllowMinStudent),
		Entry("instructor is in every min group", AllowInstructor, AllowMinStudent),
		Entry("csrf is in csrf+min group", CheckCsrf, CheckCsrf|CheckMinGroup),
	)

	DescribeTable("is not in",
		func(f, g Flag) {
			Expect(f.IsIn(g)).To(BeFalse())
		},
		Entry("student is not in min limited grader", AllowStudent, AllowMinLimitedAccessGrader),
		Entry("limited grader is not in min full grader", AllowLimitedAccessGrader, AllowMinFullAccessGrader),
		Entry("logged out is not in min student", AllowLoggedOut, AllowMinStudent),
	)

	DescribeTable("split",
		func(joined Flag, split []interface{}) {
			Expect(joined.Split()).To(ConsistOf(split...))
		},
		Entry("single flag", CheckCsrf, []interface{}{CheckCsrf}),
		Entry("min full access grader", AllowMinFullAccessGrader,
			[]interface{}{AllowInstructor, AllowFullAccessGrader}),
		Entry("min student", AllowMinStudent,
			[]interface{}{AllowInstructor, AllowFullAccessGrader, AllowLimitedAccessGrader, AllowStudent}),
		Entry("gradeable checks", GradeableChecks,
			[]interface{}{CheckMinGroup, CheckGradingSection, CheckPeerAssignment, CheckHasSubmission, AllowSelfGradeable}),
	)

	DescribeTable("difference",
		func(f, g, want Flag) {
			Expect(f.Difference(g)).To(Equal(want))
		},
		Entry("remove a member", AllowMinStudent, AllowStudent, AllowMinLimitedAccessGrader),
		Entry("remove a non-member", CheckCsrf, CheckMinGroup, CheckCsrf),
	)

	It("names every primitive flag", func() {
		all := AllowMinStudent | AllowLoggedOut | GradeableChecks | ComponentChecks |
			CheckCsrf | RequiresGradeable | RequiresComponent
		for _, f := range all.Split() {
			Expect(f.String()).NotTo(Equal("unknown"))
		}
	})
})
