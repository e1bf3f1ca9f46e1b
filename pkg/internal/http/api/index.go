package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App) {
	users := app.Group("/users").Name("Users API")
	{
		users.Get("/", listUsers)
		users.Post("/", createUser)
		users.Post("/by/google", createUserByGoogle)
		users.Get("/:userId", getUser)
		users.Put("/:userId", updateUser)
		users.Delete("/:userId", deleteUser)
		users.Post("/:userId/follow/:followId", followUser)
		users.Post("/:userId/unfollow/:unfollowId", unfollowUser)
	}

	posts := app.Group("/posts").Name("Posts API")
	{
		// The literal segments register ahead of the :postId routes so
		// fiber never swallows them as an id.
		posts.Post("/reaction", togglePostReaction)
		posts.Post("/comments", createComment)
		posts.Get("/comments/:postId", listPostComments)
		posts.Put("/comments/:commentId", updateComment)
		posts.Delete("/comments/:commentId", deleteComment)

		posts.Get("/", listPosts)
		posts.Post("/", createPost)
		posts.Get("/:postId", getPost)
		posts.Put("/:postId", updatePost)
		posts.Delete("/:postId", deletePost)
	}

	app.Get("/search", search).Name("Search API")

	app.Post("/sequencer/start", startPoster).Name("Poster API")
}
