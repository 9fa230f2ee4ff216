package generate

import (
	"stackgen/internal/config"
	"stackgen/internal/section"
)

// Dockerfile section names, in emission order.
const (
	StageBase           = "base"
	StageSystemPackages = "system-packages"
	StagePHPExtensions  = "php-extensions"
	StageComposer       = "composer"
	StageSymfonyCLI     = "symfony-cli"
	StageXdebug         = "xdebug"
	StageNode           = "node"
	StageApache         = "apache"
	StagePermissions    = "permissions"
	StageExpose         = "expose"
)

const dockerfileBase = `# 1. BASE IMAGE & ARGUMENTS
FROM php:8.4-apache

# Pinned tool versions
ARG NVM_VERSION=0.39.7
ARG NODE_VERSION=20

`

const dockerfileSystemPackages = `# 2. SYSTEM PACKAGES
RUN apt-get update \
    && apt-get install -y --no-install-recommends \
        git \
        unzip \
        wget \
        libpng-dev \
        libjpeg-dev \
        libfreetype6-dev \
        libicu-dev \
        curl \
        nano \
    && rm -rf /var/lib/apt/lists/*

`

const dockerfilePHPExtensions = `# 3. PHP EXTENSIONS
RUN docker-php-ext-configure gd --with-freetype --with-jpeg \
    && docker-php-ext-install -j$(nproc) \
        gd \
        intl \
        pdo \
        pdo_mysql \
        opcache

`

const dockerfileComposer = `# 4. COMPOSER
COPY --from=composer:latest /usr/bin/composer /usr/bin/composer

`

const dockerfileSymfonyCLI = `# 5. SYMFONY CLI
RUN wget https://get.symfony.com/cli/installer -O - | bash \
  && mv /root/.symfony*/bin/symfony /usr/local/bin/symfony

`

const dockerfileXdebug = `# 6. XDEBUG
RUN pecl install xdebug \
    && docker-php-ext-enable xdebug

# Custom PHP configuration
COPY custom-php.ini /usr/local/etc/php/conf.d/

`

const dockerfileNode = `# 7. NVM & NODE.JS
ENV NVM_DIR=/root/.nvm
ENV PATH=$NVM_DIR/versions/node/v$NODE_VERSION/bin:$PATH

RUN curl -o- https://raw.githubusercontent.com/nvm-sh/nvm/v$NVM_VERSION/install.sh | bash \
    && /bin/bash -c "source $NVM_DIR/nvm.sh && nvm install $NODE_VERSION && nvm alias default $NODE_VERSION && nvm use default" \
    && rm -rf /tmp/*

`

const dockerfileApache = `# 8. APACHE
RUN sed -i 's|/var/www/html|/var/www/html/public|g' /etc/apache2/sites-available/000-default.conf \
    && echo "<Directory /var/www/html/public>\n\
    AllowOverride All\n\
    Require all granted\n\
    </Directory>" >> /etc/apache2/apache2.conf \
    && a2enmod rewrite

`

const dockerfilePermissions = `# 9. PERMISSIONS
RUN chown -R www-data:www-data /var/www/html \
    && find /var/www/html -type d -exec chmod 775 {} \; \
    && find /var/www/html -type f -exec chmod 644 {} \;

`

const dockerfileExpose = `# 10. ENTRYPOINT
EXPOSE 80
`

// dockerfileSections returns the build stages for c. Order is fixed:
// mandatory stages, symfony-cli (optional), xdebug, node (optional), trailer.
func dockerfileSections(c config.Configuration) section.List {
	var l section.List
	return l.Add(StageBase, dockerfileBase).
		Add(StageSystemPackages, dockerfileSystemPackages).
		Add(StagePHPExtensions, dockerfilePHPExtensions).
		Add(StageComposer, dockerfileComposer).
		AddIf(c.InstallSymfonyCLI, StageSymfonyCLI, dockerfileSymfonyCLI).
		Add(StageXdebug, dockerfileXdebug).
		AddIf(c.InstallNode, StageNode, dockerfileNode).
		Add(StageApache, dockerfileApache).
		Add(StagePermissions, dockerfilePermissions).
		Add(StageExpose, dockerfileExpose)
}

func buildDockerfile(c config.Configuration) (string, error) {
	return dockerfileSections(c).String(), nil
}
