package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Cadet Records API",
        "description": "Course, team, student and leadership records with nested family and discipline history",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Authentication", "description": "Signup, login and profile"},
        {"name": "Students", "description": "Student records with family members and discipline history"},
        {"name": "Leadership", "description": "Course leadership and staff roster"},
        {"name": "Teams", "description": "Teams, command chain and roster export"},
        {"name": "Courses", "description": "Course intakes and yearly promotion"},
        {"name": "Tags", "description": "Private notes of the signed-in user"}
    ],
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register account",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "200": {"description": "Created", "schema": {"$ref": "#/definitions/SignupResponse"}},
                    "400": {"description": "Validation failed or email taken", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token issued", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/profile": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserInfo"}},
                    "401": {"description": "Missing or invalid credential", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/students": {
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Created", "schema": {"$ref": "#/definitions/Created"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Team not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/students/team/{teamId}": {
            "get": {
                "tags": ["Students"],
                "summary": "Students of a team",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "teamId", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentDetail"}}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentDetail"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "description": "Omitted team and course keep their stored values. Omitted child collections are left untouched.",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/Success"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student and its children",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Success"}}
                }
            }
        },
        "/leadership": {
            "post": {
                "tags": ["Leadership"],
                "summary": "Save course leadership",
                "description": "Upserts the leadership and replaces the whole staff roster.",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Saved", "schema": {"$ref": "#/definitions/LeadershipSaveResult"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/leadership/{courseId}": {
            "get": {
                "tags": ["Leadership"],
                "summary": "Course leadership",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "courseId", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Empty or one element list", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        },
        "/leadership/{id}": {
            "delete": {
                "tags": ["Leadership"],
                "summary": "Delete course leadership",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Deleted"}}
                }
            }
        },
        "/teams": {
            "get": {
                "tags": ["Teams"],
                "summary": "List teams",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "courseId", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            },
            "post": {
                "tags": ["Teams"],
                "summary": "Create or update team",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Saved", "schema": {"$ref": "#/definitions/Created"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/teams/{id}/students/export": {
            "get": {
                "tags": ["Teams"],
                "summary": "Export team roster",
                "produces": ["text/csv", "application/pdf"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "query", "name": "format", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Roster document", "schema": {"type": "file"}},
                    "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Team not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Open a course",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Created", "schema": {"$ref": "#/definitions/Created"}}
                }
            }
        },
        "/courses/promote": {
            "post": {
                "tags": ["Courses"],
                "summary": "Yearly course promotion",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "force", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "Promotion summary", "schema": {"type": "object"}}
                }
            }
        },
        "/tags": {
            "get": {
                "tags": ["Tags"],
                "summary": "List notes",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            },
            "post": {
                "tags": ["Tags"],
                "summary": "Create note",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Created", "schema": {"$ref": "#/definitions/Created"}}
                }
            }
        },
        "/tags/{id}": {
            "put": {
                "tags": ["Tags"],
                "summary": "Update note",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/Success"}}
                }
            },
            "delete": {
                "tags": ["Tags"],
                "summary": "Delete note",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Success"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "Success": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "Created": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "success": {"type": "boolean"}}
        },
        "Deleted": {
            "type": "object",
            "properties": {"deleted": {"type": "boolean"}}
        },
        "LeadershipSaveResult": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "updated": {"type": "boolean"}}
        },
        "SignupRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "fullName": {"type": "string"}
            }
        },
        "SignupResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "fullName": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "UserInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "role": {"type": "string"},
                "capabilities": {"type": "array", "items": {"type": "string"}}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/UserInfo"}
            }
        },
        "FamilyMember": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "relation": {"type": "string", "enum": ["Father", "Mother", "Brother", "Sister", "Relative"]},
                "full_name": {"type": "string"},
                "birth_date": {"type": "string", "format": "date"},
                "birth_place": {"type": "string"},
                "address": {"type": "string"},
                "job": {"type": "string"},
                "phone_mobile": {"type": "string"},
                "phone_home": {"type": "string"}
            }
        },
        "DisciplineRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "date": {"type": "string", "format": "date"},
                "year": {"type": "integer"},
                "event": {"type": "string"},
                "score_change": {"type": "integer"},
                "note": {"type": "string"}
            }
        },
        "StudentRequest": {
            "type": "object",
            "required": ["first_name", "last_name", "father_name", "birth_date", "email", "phone"],
            "properties": {
                "team_id": {"type": "string"},
                "course_id": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "father_name": {"type": "string"},
                "current_score": {"type": "integer"},
                "family_members": {"type": "array", "items": {"type": "object"}},
                "discipline_records": {"type": "array", "items": {"type": "object"}}
            }
        },
        "StudentDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "team_id": {"type": "string"},
                "course_id": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "father_name": {"type": "string"},
                "rank": {"type": "string"},
                "current_score": {"type": "integer"},
                "family_members": {"type": "array", "items": {"$ref": "#/definitions/FamilyMember"}},
                "discipline_records": {"type": "array", "items": {"$ref": "#/definitions/DisciplineRecord"}}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
