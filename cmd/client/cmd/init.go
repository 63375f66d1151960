package cmd

import (
	"tutorlink/cmd/client/cmd/auth"
	"tutorlink/cmd/client/cmd/course"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	rootCmd.AddCommand(course.CourseCmd)
	course.CourseCmd.AddCommand(course.CreateCmd)
	course.CourseCmd.AddCommand(course.EditCmd)
	course.CourseCmd.AddCommand(course.PullCmd)
	course.CourseCmd.AddCommand(course.PushCmd)
	course.CourseCmd.AddCommand(course.ListCmd)
	course.CourseCmd.AddCommand(course.StatusCmd)
}
